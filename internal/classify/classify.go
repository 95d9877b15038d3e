// Package classify assigns a coarse semantic kind to an answer string.
// The kind is used to pick wrong options of the same type when building
// multiple-choice questions.
package classify

import "strings"

// Kind is the semantic type of an answer.
type Kind string

const (
	KindPerson    Kind = "person"
	KindPlace     Kind = "place"
	KindEvent     Kind = "event"
	KindDocument  Kind = "document"
	KindLaw       Kind = "law"
	KindConcept   Kind = "concept"
	KindGroup     Kind = "group"
	KindTechnical Kind = "technical"
	KindCountry   Kind = "country"
)

// AllKinds returns every kind in a stable order.
func AllKinds() []Kind {
	return []Kind{
		KindPerson, KindPlace, KindEvent, KindDocument, KindLaw,
		KindConcept, KindGroup, KindTechnical, KindCountry,
	}
}

// rule pairs a predicate with the kind it implies. Rules are evaluated
// in order; the first match wins.
type rule struct {
	match func(string) bool
	kind  Kind
}

func suffixRule(kind Kind, suffixes ...string) rule {
	return rule{
		kind: kind,
		match: func(s string) bool {
			for _, suf := range suffixes {
				if strings.HasSuffix(s, suf) {
					return true
				}
			}
			return false
		},
	}
}

// rules is the structural fallback for answers not present in the curated
// table. Order matters: 法 is claimed by law before technical can see it.
var rules = []rule{
	suffixRule(KindGroup, "朝", "家", "派", "王国", "軍", "一族"),
	suffixRule(KindLaw, "法", "条約", "令", "法規"),
	suffixRule(KindEvent, "の戦い", "変", "事件", "運動", "大移動"),
	{kind: KindDocument, match: func(s string) bool {
		return strings.HasSuffix(s, "書") || strings.HasSuffix(s, "記") ||
			strings.HasSuffix(s, "典") || strings.Contains(s, "『")
	}},
	suffixRule(KindPlace, "市", "地方", "半島", "島", "都"),
	suffixRule(KindConcept, "制", "権", "税", "道", "者"),
	suffixRule(KindTechnical, "法", "技術", "数字", "様式"),
}

// Classify resolves the kind of an answer: curated table first, then the
// suffix rules, then KindConcept. Pure and deterministic.
func Classify(answer string) Kind {
	if k, ok := knownAnswers[answer]; ok {
		return k
	}
	for _, r := range rules {
		if r.match(answer) {
			return r.kind
		}
	}
	return KindConcept
}
