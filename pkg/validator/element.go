package validator

import (
	"reflect"
	"strings"
)

type elementKind uint8

const (
	elementOther elementKind = iota
	elementText
	elementSequence
	elementMapping
)

// element is the classified form of a slice element, map key or map value.
type element struct {
	kind elementKind
	text string
	size int
}

func classify(v any) element {
	if isAbsent(v) {
		return element{kind: elementOther}
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return element{kind: elementText, text: rv.String()}
	case reflect.Slice, reflect.Array:
		return element{kind: elementSequence, size: rv.Len()}
	case reflect.Map:
		return element{kind: elementMapping, size: rv.Len()}
	}
	return element{kind: elementOther}
}

// emptyPolicy decides how a mapping element counts.
type emptyPolicy uint8

const (
	// mappingBySize: a mapping is empty when it has no entries.
	mappingBySize emptyPolicy = iota
	// mappingAlwaysEmpty: any mapping counts as empty.
	mappingAlwaysEmpty
)

func (e element) empty(trim bool, policy emptyPolicy) bool {
	switch e.kind {
	case elementText:
		if trim {
			return strings.TrimSpace(e.text) == ""
		}
		return e.text == ""
	case elementSequence:
		return e.size == 0
	case elementMapping:
		return policy == mappingAlwaysEmpty || e.size == 0
	}
	return false
}
