package probes

import "strings"

// validators maps each catalogued probe to its response heuristic. All
// checks are plain pattern matching over the returned text; generated code
// is never executed.
var validators = map[string]func(response string) (bool, string){
	"fibonacci":     validateFibonacci,
	"palindrome":    validatePalindrome,
	"fizzbuzz":      validateFizzbuzz,
	"json_parse":    validateJSONParse,
	"error_explain": validateErrorExplain,
}

func validateFibonacci(response string) (bool, string) {
	lower := strings.ToLower(response)
	if !strings.Contains(lower, "def ") {
		return false, "No function definition found"
	}
	if !strings.Contains(lower, "fibonacci") {
		return false, "Function name not found"
	}
	if !strings.Contains(lower, "return") {
		return false, "No return statement"
	}
	return true, "Function generated correctly"
}

// validatePalindrome accepts two pass shapes: reversal plus case handling,
// or reversal alone with a weaker pass reason.
func validatePalindrome(response string) (bool, string) {
	lower := strings.ToLower(response)
	if !strings.Contains(lower, "def ") {
		return false, "No function definition found"
	}
	hasReverse := strings.Contains(response, "[::-1]") || strings.Contains(lower, "reversed")
	hasLower := strings.Contains(response, ".lower()") || strings.Contains(response, "lower")
	if hasReverse && hasLower {
		return true, "Handles case and reversal"
	}
	if hasReverse {
		return true, "Uses string reversal"
	}
	return false, "Missing palindrome logic"
}

func validateFizzbuzz(response string) (bool, string) {
	lower := strings.ToLower(response)
	if !strings.Contains(lower, "def ") {
		return false, "No function definition found"
	}
	hasFizz := strings.Contains(lower, "fizz")
	hasBuzz := strings.Contains(lower, "buzz")
	hasMod := strings.Contains(response, "%")
	if hasFizz && hasBuzz && hasMod {
		return true, "Loop with modulo logic"
	}
	return false, "Missing FizzBuzz logic"
}

func validateJSONParse(response string) (bool, string) {
	lower := strings.ToLower(response)
	if !strings.Contains(lower, "json") {
		return false, "No json module usage"
	}
	if strings.Contains(lower, "load") {
		return true, "Uses json.loads()"
	}
	return false, "Missing JSON parsing"
}

var nameErrorKeywords = []string{
	"not defined",
	"undefined",
	"doesn't exist",
	"not exist",
	"variable",
	"declared",
}

func validateErrorExplain(response string) (bool, string) {
	lower := strings.ToLower(response)
	for _, kw := range nameErrorKeywords {
		if strings.Contains(lower, kw) {
			return true, "Identified NameError issue"
		}
	}
	return false, "Did not explain error"
}
