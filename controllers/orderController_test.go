package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"boba-pos/services"
)

type fakeOrderService struct {
	gotInput services.SubmitOrderInput
	result   *services.OrderResult
	err      error
}

func (f *fakeOrderService) SubmitOrder(_ context.Context, input services.SubmitOrderInput) (*services.OrderResult, error) {
	f.gotInput = input
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newOrderRouter(svc services.OrderService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctl := NewOrderController(svc, zap.NewNop())
	r.POST("/orders", ctl.SubmitOrder)
	return r
}

func TestSubmitOrder_Success(t *testing.T) {
	svc := &fakeOrderService{result: &services.OrderResult{OrderID: 42, ItemsProcessed: 6}}
	r := newOrderRouter(svc)

	body := `{"items":[{"id":1,"quantity":2,"toppings":[{"id":10},{"id":11}]}],"total":13.7,"customerId":5}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.EqualValues(t, 42, resp["orderId"])
	assert.EqualValues(t, 6, resp["itemsProcessed"])

	assert.InDelta(t, 13.7, svc.gotInput.Total, 1e-9)
	require.NotNil(t, svc.gotInput.CustomerID)
	assert.Equal(t, uint(5), *svc.gotInput.CustomerID)
	require.Len(t, svc.gotInput.Items, 1)
	assert.Len(t, svc.gotInput.Items[0].Toppings, 2)
}

func TestSubmitOrder_MissingTotal(t *testing.T) {
	r := newOrderRouter(&fakeOrderService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"items":[{"id":1,"quantity":1}]}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitOrder_EmptyCart(t *testing.T) {
	svc := &fakeOrderService{err: services.ErrEmptyCart}
	r := newOrderRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"items":[],"total":0}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.NotEmpty(t, resp["error"])
}

func TestSubmitOrder_NegativeTotal(t *testing.T) {
	svc := &fakeOrderService{err: services.ErrInvalidTotal}
	r := newOrderRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"items":[{"id":1,"quantity":1}],"total":-5}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, services.ErrInvalidTotal.Error(), resp["error"])
}

func TestSubmitOrder_ServiceFailureIsGeneric(t *testing.T) {
	svc := &fakeOrderService{err: assert.AnError}
	r := newOrderRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"items":[{"id":1,"quantity":1}],"total":5}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	// The raw error string must not leak into the body.
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}
