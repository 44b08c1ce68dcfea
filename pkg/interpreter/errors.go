package interpreter

import (
	"fmt"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// RuntimeError reports a failed evaluation. It ends the current line only.
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

func runtimeErrorf(format string, args ...any) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf(format, args...)}
}

var (
	errNoLastValue     = &RuntimeError{Message: "No previous result to refer to with 'it'"}
	errCompareNumbers  = &RuntimeError{Message: "Type error: expected numbers for comparison"}
	errCompareSameType = &RuntimeError{Message: "Type error: expected same types for equality"}
	errConditionType   = &RuntimeError{Message: "Type error: condition must be number"}
	errLoopCountType   = &RuntimeError{Message: "Type error: loop count must be number"}
	errOverflow        = &RuntimeError{Message: "arithmetic overflow"}
)

// editCosts counts every insertion, deletion and substitution as one edit.
var editCosts = levenshtein.Options{
	InsCost: 1,
	DelCost: 1,
	SubCost: 1,
	Matches: levenshtein.IdenticalRunes,
}

// unboundError explains a reference to a name that was never set. When a
// bound name is a likely typo of name it is offered as well.
func (i *Interpreter) unboundError(name string) *RuntimeError {
	if near, ok := i.nearestName(name); ok {
		return runtimeErrorf("I don't know the value of '%s'. Did you mean 'Set %s to ...' first? (did you mean '%s'?)", name, name, near)
	}
	return runtimeErrorf("I don't know the value of '%s'. Did you mean 'Set %s to ...' first?", name, name)
}

// nearestName finds the bound name closest to name, accepting one edit per
// three characters of name.
func (i *Interpreter) nearestName(name string) (string, bool) {
	best, bestDist := "", -1
	src := []rune(name)
	for _, candidate := range i.env.Keys() {
		if candidate == name {
			continue
		}
		dist := levenshtein.DistanceForStrings(src, []rune(candidate), editCosts)
		if dist*3 > len(src) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = candidate, dist
		}
	}
	return best, bestDist >= 0
}
