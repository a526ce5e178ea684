package text

import (
	"context"
	"fmt"

	"github.com/mathforge/mathforge/internal/providers/common"
	"github.com/mathforge/mathforge/internal/types"
)

// Provider exposes string utilities as tools
type Provider struct {
	common.Ops
}

// NewProvider creates a text provider
func NewProvider() *Provider {
	return &Provider{}
}

// Definition returns service metadata with all tools
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "text",
		Name:        "Text Service",
		Description: "String utilities (reversal, palindromes, counting, word analysis)",
		Category:    types.CategoryText,
		Capabilities: []string{
			"transformation",
			"analysis",
		},
		Tools: []types.Tool{
			{
				ID:          "text.reverse",
				Name:        "Reverse",
				Description: "Reverse a string",
				Parameters: []types.Parameter{
					{Name: "s", Type: "string", Description: "Input string", Required: true},
				},
				Returns: "string",
			},
			{
				ID:          "text.isPalindrome",
				Name:        "Is Palindrome",
				Description: "Check whether a string is a palindrome (case and space insensitive)",
				Parameters: []types.Parameter{
					{Name: "s", Type: "string", Description: "Input string", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          "text.countVowels",
				Name:        "Count Vowels",
				Description: "Count vowels in a string",
				Parameters: []types.Parameter{
					{Name: "s", Type: "string", Description: "Input string", Required: true},
				},
				Returns: "number",
			},
			{
				ID:          "text.countConsonants",
				Name:        "Count Consonants",
				Description: "Count consonants in a string",
				Parameters: []types.Parameter{
					{Name: "s", Type: "string", Description: "Input string", Required: true},
				},
				Returns: "number",
			},
			{
				ID:          "text.capitalizeWords",
				Name:        "Capitalize Words",
				Description: "Capitalize the first letter of each word",
				Parameters: []types.Parameter{
					{Name: "s", Type: "string", Description: "Input string", Required: true},
				},
				Returns: "string",
			},
			{
				ID:          "text.dedupe",
				Name:        "Deduplicate Characters",
				Description: "Remove duplicate characters preserving order",
				Parameters: []types.Parameter{
					{Name: "s", Type: "string", Description: "Input string", Required: true},
				},
				Returns: "string",
			},
			{
				ID:          "text.wordFrequency",
				Name:        "Word Frequency",
				Description: "Count word occurrences, ignoring case and punctuation",
				Parameters: []types.Parameter{
					{Name: "s", Type: "string", Description: "Input text", Required: true},
				},
				Returns: "object",
			},
			{
				ID:          "text.longestWord",
				Name:        "Longest Word",
				Description: "Find the longest word in a text",
				Parameters: []types.Parameter{
					{Name: "s", Type: "string", Description: "Input text", Required: true},
				},
				Returns: "string",
			},
		},
	}
}

// Every tool takes the single string parameter "s".
var tools = map[string]func(string) interface{}{
	"text.reverse":         func(s string) interface{} { return Reverse(s) },
	"text.isPalindrome":    func(s string) interface{} { return IsPalindrome(s) },
	"text.countVowels":     func(s string) interface{} { return CountVowels(s) },
	"text.countConsonants": func(s string) interface{} { return CountConsonants(s) },
	"text.capitalizeWords": func(s string) interface{} { return CapitalizeWords(s) },
	"text.dedupe":          func(s string) interface{} { return Dedupe(s) },
	"text.wordFrequency":   func(s string) interface{} { return WordFrequency(s) },
	"text.longestWord":     func(s string) interface{} { return LongestWord(s) },
}

// Execute routes to the matching operation
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	fn, ok := tools[toolID]
	if !ok {
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}

	s, ok := common.GetString(params, "s")
	if !ok {
		return common.Failure("s parameter required")
	}

	return common.Success(map[string]interface{}{"result": fn(s)})
}
