package api

import (
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	require.NoError(t, registerValidators())
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	type moneyParams struct {
		Amount decimal.Decimal `binding:"money_positive"`
	}
	type bytesParams struct {
		Name string `binding:"max_bytes=8"`
	}

	t.Run("money_positive", func(t *testing.T) {
		require.NoError(t, v.Struct(moneyParams{Amount: decimal.NewFromInt(1)}))
		require.Error(t, v.Struct(moneyParams{Amount: decimal.Zero}))
		require.Error(t, v.Struct(moneyParams{Amount: decimal.NewFromInt(-10)}))
		require.Error(t, v.Struct(moneyParams{Amount: decimal.RequireFromString("1.5")}))
	})

	t.Run("max_bytes", func(t *testing.T) {
		require.NoError(t, v.Struct(bytesParams{Name: "12345678"}))
		// 3 руны, но 12 байт.
		require.Error(t, v.Struct(bytesParams{Name: strings.Repeat("😁", 3)}))
	})
}
