package quizgen

import "github.com/ichimon-app/ichimon/internal/classify"

// BuildPools buckets every unique answer by its semantic kind. Duplicate
// answers across questions collapse to a single pool entry; first-seen
// order is preserved. Pools are cheap to rebuild, so they are recomputed
// per generation call rather than cached.
func BuildPools(allAnswers []string) map[classify.Kind][]string {
	pools := make(map[classify.Kind][]string, len(classify.AllKinds()))
	for _, k := range classify.AllKinds() {
		pools[k] = nil
	}

	seen := make(map[string]struct{}, len(allAnswers))
	for _, a := range allAnswers {
		if _, dup := seen[a]; dup {
			continue
		}
		seen[a] = struct{}{}
		k := classify.Classify(a)
		pools[k] = append(pools[k], a)
	}
	return pools
}
