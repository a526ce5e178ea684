package convert

import (
	"context"
	"fmt"

	"github.com/mathforge/mathforge/internal/providers/common"
	"github.com/mathforge/mathforge/internal/types"
)

// Provider exposes base conversions and digit utilities as tools
type Provider struct {
	common.Ops
}

// NewProvider creates a conversions provider
func NewProvider() *Provider {
	return &Provider{}
}

// Definition returns service metadata with all tools
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "convert",
		Name:        "Conversion Service",
		Description: "Base conversions (binary, hexadecimal) and digit utilities",
		Category:    types.CategoryConvert,
		Capabilities: []string{
			"base_conversion",
			"digits",
		},
		Tools: []types.Tool{
			{
				ID:          "convert.binaryToDecimal",
				Name:        "Binary to Decimal",
				Description: "Parse a binary numeral string",
				Parameters: []types.Parameter{
					{Name: "s", Type: "string", Description: "Binary string", Required: true},
				},
				Returns: "number",
			},
			{
				ID:          "convert.decimalToBinary",
				Name:        "Decimal to Binary",
				Description: "Render a non-negative integer in binary",
				Parameters: []types.Parameter{
					{Name: "n", Type: "number", Description: "Non-negative integer", Required: true},
				},
				Returns: "string",
			},
			{
				ID:          "convert.hexToDecimal",
				Name:        "Hex to Decimal",
				Description: "Parse a hexadecimal numeral string",
				Parameters: []types.Parameter{
					{Name: "s", Type: "string", Description: "Hexadecimal string", Required: true},
				},
				Returns: "number",
			},
			{
				ID:          "convert.decimalToHex",
				Name:        "Decimal to Hex",
				Description: "Render a non-negative integer in hexadecimal",
				Parameters: []types.Parameter{
					{Name: "n", Type: "number", Description: "Non-negative integer", Required: true},
				},
				Returns: "string",
			},
			{
				ID:          "convert.digitSum",
				Name:        "Digit Sum",
				Description: "Sum the decimal digits",
				Parameters: []types.Parameter{
					{Name: "n", Type: "number", Description: "Integer", Required: true},
				},
				Returns: "number",
			},
			{
				ID:          "convert.digitProduct",
				Name:        "Digit Product",
				Description: "Multiply the decimal digits",
				Parameters: []types.Parameter{
					{Name: "n", Type: "number", Description: "Integer", Required: true},
				},
				Returns: "number",
			},
			{
				ID:          "convert.isArmstrong",
				Name:        "Is Armstrong",
				Description: "Check whether a number equals the sum of its digits raised to the digit count",
				Parameters: []types.Parameter{
					{Name: "n", Type: "number", Description: "Integer", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          "convert.armstrongUpTo",
				Name:        "Armstrong Numbers",
				Description: "List Armstrong numbers up to a limit",
				Parameters: []types.Parameter{
					{Name: "limit", Type: "number", Description: "Upper bound (inclusive)", Required: true},
				},
				Returns: "array",
			},
		},
	}
}

// Execute routes to the matching operation
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "convert.binaryToDecimal":
		s, ok := common.GetString(params, "s")
		if !ok {
			return common.Failure("s parameter required")
		}
		n, err := BinaryToDecimal(s)
		if err != nil {
			return common.FailureErr(err)
		}
		return common.Success(map[string]interface{}{"result": n})

	case "convert.decimalToBinary":
		n, ok := common.GetInt(params, "n")
		if !ok {
			return common.Failure("n parameter required (integer)")
		}
		s, err := DecimalToBinary(n)
		if err != nil {
			return common.FailureErr(err)
		}
		return common.Success(map[string]interface{}{"result": s})

	case "convert.hexToDecimal":
		s, ok := common.GetString(params, "s")
		if !ok {
			return common.Failure("s parameter required")
		}
		n, err := HexToDecimal(s)
		if err != nil {
			return common.FailureErr(err)
		}
		return common.Success(map[string]interface{}{"result": n})

	case "convert.decimalToHex":
		n, ok := common.GetInt(params, "n")
		if !ok {
			return common.Failure("n parameter required (integer)")
		}
		s, err := DecimalToHex(n)
		if err != nil {
			return common.FailureErr(err)
		}
		return common.Success(map[string]interface{}{"result": s})

	case "convert.digitSum":
		n, ok := common.GetInt(params, "n")
		if !ok {
			return common.Failure("n parameter required (integer)")
		}
		return common.Success(map[string]interface{}{"result": SumOfDigits(n)})

	case "convert.digitProduct":
		n, ok := common.GetInt(params, "n")
		if !ok {
			return common.Failure("n parameter required (integer)")
		}
		return common.Success(map[string]interface{}{"result": ProductOfDigits(n)})

	case "convert.isArmstrong":
		n, ok := common.GetInt(params, "n")
		if !ok {
			return common.Failure("n parameter required (integer)")
		}
		return common.Success(map[string]interface{}{"result": IsArmstrong(n)})

	case "convert.armstrongUpTo":
		limit, ok := common.GetInt(params, "limit")
		if !ok {
			return common.Failure("limit parameter required (integer)")
		}
		if limit > maxArmstrongLimit {
			return common.Failure(fmt.Sprintf("limit must be <= %d", maxArmstrongLimit))
		}
		return common.Success(map[string]interface{}{"result": ArmstrongUpTo(limit)})

	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

const maxArmstrongLimit = 10_000_000
