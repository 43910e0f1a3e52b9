package handler

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag/v2"

	_ "github.com/restopos/backend/docs"
)

var ginParam = regexp.MustCompile(`:(\w+)`)

func TestSwaggerDocCoversRoutes(t *testing.T) {
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc struct {
		BasePath string                                `json:"basePath"`
		Paths    map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "/api/v1", doc.BasePath)

	r := newTestRouter(
		NewItemHandler(nil, nil),
		NewStockHandler(nil),
		NewOrderHandler(nil, nil),
		NewTransferHandler(nil),
		NewCountHandler(nil),
		NewPurchaseOrderHandler(nil, nil),
	)
	routes := r.Routes()
	require.NotEmpty(t, routes)

	documented := 0
	for _, route := range routes {
		path := ginParam.ReplaceAllString(strings.TrimPrefix(route.Path, doc.BasePath), "{$1}")
		ops, ok := doc.Paths[path]
		if !assert.True(t, ok, "%s %s is not documented", route.Method, route.Path) {
			continue
		}
		_, ok = ops[strings.ToLower(route.Method)]
		assert.True(t, ok, "%s %s is not documented", route.Method, route.Path)
		documented++
	}
	assert.Equal(t, len(routes), documented)
}

func TestAPIResponseMatchesEnvelope(t *testing.T) {
	var resp APIResponse[ItemCostResponse]
	body := `{"success":true,"data":{"item_id":"3f1c9a4e-6a7b-4c1d-9e2f-0a1b2c3d4e5f","cost_per_unit":"0.02","total_stock_quantity":"10000","total_stock_value":"200"}}`

	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "0.02", resp.Data.CostPerUnit.String())
	assert.Equal(t, "200", resp.Data.TotalStockValue.String())
	assert.Nil(t, resp.Error)
}
