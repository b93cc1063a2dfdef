package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/doitintl/product-catalog/framework/web"
	"github.com/doitintl/product-catalog/logger"
	loggerMocks "github.com/doitintl/product-catalog/logger/mocks"
	"github.com/doitintl/product-catalog/productcatalog/domain"
	"github.com/doitintl/product-catalog/productcatalog/service/mocks"
)

type fields struct {
	loggerProviderMock loggerMocks.ILogger
	service            mocks.IProductService
}

func newHandler(f *fields) *Products {
	return &Products{
		loggerProvider: func(ctx context.Context) logger.ILogger {
			return &f.loggerProviderMock
		},
		service: &f.service,
	}
}

func newContext(method, id, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)

	ctx.Request = httptest.NewRequest(method, "/products/"+id, strings.NewReader(body))
	ctx.Request.Header.Set("Content-Type", "application/json")

	if id != "" {
		ctx.Params = gin.Params{{Key: "id", Value: id}}
	}

	return ctx, recorder
}

func assertWebError(t *testing.T, err error, status int, want interface{}) {
	t.Helper()

	var webErr *web.Error
	if assert.ErrorAs(t, err, &webErr) {
		assert.Equal(t, status, webErr.Status)
		assert.Equal(t, want, webErr.Body)
	}
}

func TestProducts_ListProducts(t *testing.T) {
	listErr := errors.New("table missing")

	tests := []struct {
		name     string
		on       func(*fields)
		wantBody string
		wantErr  bool
	}{
		{
			name: "lists products",
			on: func(f *fields) {
				f.service.On("ListProducts", mock.AnythingOfType("*gin.Context")).
					Return(&domain.ProductList{Products: map[string]string{"1": "Widget"}}, nil).
					Once()
				f.loggerProviderMock.On("Info", "Get-All Request succeeded").Once()
			},
			wantBody: `{"products":{"1":"Widget"}}`,
		},
		{
			name: "store failure",
			on: func(f *fields) {
				f.service.On("ListProducts", mock.AnythingOfType("*gin.Context")).Return(nil, listErr).Once()
				f.loggerProviderMock.On("Errorf", mock.Anything, domain.StatusNotRetrieved, listErr).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fields{}
			tt.on(f)

			ctx, recorder := newContext(http.MethodGet, "", "")

			err := newHandler(f).ListProducts(ctx)
			if tt.wantErr {
				assertWebError(t, err, http.StatusInternalServerError, domain.ErrorResponse{
					Status:     domain.StatusNotRetrieved,
					StatusCode: "500",
					Message:    listErr.Error(),
				})
			} else {
				assert.NoError(t, err)
				assert.Equal(t, http.StatusOK, recorder.Code)
				assert.JSONEq(t, tt.wantBody, recorder.Body.String())
			}

			f.service.AssertExpectations(t)
			f.loggerProviderMock.AssertExpectations(t)
		})
	}
}

func TestProducts_GetProduct(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		on         func(*fields)
		wantStatus int
		wantBody   string
		wantErr    interface{}
	}{
		{
			name: "found",
			id:   "007",
			on: func(f *fields) {
				f.service.On("GetProduct", mock.AnythingOfType("*gin.Context"), "7").
					Return(&domain.Product{ID: "7", Name: "Widget"}, nil).
					Once()
				f.loggerProviderMock.On("Infof", mock.Anything, "Widget").Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"Product Details retrieved","name":"Widget"}`,
		},
		{
			name:       "non integer id",
			id:         "abc",
			on:         func(f *fields) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative id",
			id:         "-1",
			on:         func(f *fields) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "explicitly signed id",
			id:         "+7",
			on:         func(f *fields) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing product",
			id:   "8",
			on: func(f *fields) {
				f.service.On("GetProduct", mock.AnythingOfType("*gin.Context"), "8").
					Return(nil, domain.ErrProductNotFound).
					Once()
				f.loggerProviderMock.On("Errorf", mock.Anything, domain.StatusNotRetrieved, domain.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantErr: domain.ErrorResponse{
				Status:     domain.StatusNotRetrieved,
				StatusCode: "500",
				Message:    domain.ErrProductNotFound.Error(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fields{}
			tt.on(f)

			ctx, recorder := newContext(http.MethodGet, tt.id, "")

			err := newHandler(f).GetProduct(ctx)

			switch tt.wantStatus {
			case http.StatusOK:
				assert.NoError(t, err)
				assert.JSONEq(t, tt.wantBody, recorder.Body.String())
			case http.StatusBadRequest:
				assertWebError(t, err, http.StatusBadRequest, nil)
				assert.ErrorIs(t, err, domain.ErrInvalidProductID)
				assert.ErrorIs(t, err, web.ErrBadRequest)
			default:
				assertWebError(t, err, tt.wantStatus, tt.wantErr)
			}

			f.service.AssertExpectations(t)
			f.loggerProviderMock.AssertExpectations(t)
		})
	}
}

func TestProducts_AddProduct(t *testing.T) {
	saveErr := errors.New("throughput exceeded")

	tests := []struct {
		name     string
		id       string
		body     string
		on       func(*fields)
		wantBody string
		wantErr  bool
	}{
		{
			name: "stores product",
			id:   "1",
			body: `{"name":"Widget"}`,
			on: func(f *fields) {
				f.service.On("AddProduct", mock.AnythingOfType("*gin.Context"), "1", "Widget").
					Return(&domain.Product{ID: "1", Name: "Widget"}, nil).
					Once()
				f.loggerProviderMock.On("Infof", mock.Anything, "Widget").Once()
			},
			wantBody: `{"status":"New Product added to Product Catalog","name":"Widget"}`,
		},
		{
			name: "empty name",
			id:   "2",
			body: `{"name":""}`,
			on: func(f *fields) {
				f.service.On("AddProduct", mock.AnythingOfType("*gin.Context"), "2", "").
					Return(&domain.Product{ID: "2", Name: ""}, nil).
					Once()
				f.loggerProviderMock.On("Infof", mock.Anything, "").Once()
			},
			wantBody: `{"status":"New Product added to Product Catalog","name":""}`,
		},
		{
			name: "missing name",
			id:   "1",
			body: `{}`,
			on: func(f *fields) {
				f.loggerProviderMock.On("Errorf", mock.Anything, domain.StatusNotSaved, domain.ErrMissingName).Once()
			},
			wantErr: true,
		},
		{
			name: "non string name",
			id:   "1",
			body: `{"name":7}`,
			on: func(f *fields) {
				f.loggerProviderMock.On("Errorf", mock.Anything, domain.StatusNotSaved, mock.Anything).Once()
			},
			wantErr: true,
		},
		{
			name: "store failure",
			id:   "1",
			body: `{"name":"Widget"}`,
			on: func(f *fields) {
				f.service.On("AddProduct", mock.AnythingOfType("*gin.Context"), "1", "Widget").Return(nil, saveErr).Once()
				f.loggerProviderMock.On("Errorf", mock.Anything, domain.StatusNotSaved, saveErr).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fields{}
			tt.on(f)

			ctx, recorder := newContext(http.MethodPost, tt.id, tt.body)

			err := newHandler(f).AddProduct(ctx)
			if tt.wantErr {
				var webErr *web.Error
				if assert.ErrorAs(t, err, &webErr) {
					assert.Equal(t, http.StatusInternalServerError, webErr.Status)
					assert.Equal(t, domain.StatusNotSaved, webErr.Body.(domain.ErrorResponse).Status)
				}
			} else {
				assert.NoError(t, err)
				assert.JSONEq(t, tt.wantBody, recorder.Body.String())
			}

			f.service.AssertExpectations(t)
			f.loggerProviderMock.AssertExpectations(t)
		})
	}
}

func TestProducts_AddProductRejectsSignedID(t *testing.T) {
	for _, id := range []string{"-1", "+7"} {
		t.Run(id, func(t *testing.T) {
			f := &fields{}

			ctx, _ := newContext(http.MethodPost, id, `{"name":"Widget"}`)

			err := newHandler(f).AddProduct(ctx)

			assertWebError(t, err, http.StatusBadRequest, nil)
			assert.ErrorIs(t, err, domain.ErrInvalidProductID)
			f.service.AssertNotCalled(t, "AddProduct", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestProducts_Ping(t *testing.T) {
	ctx, recorder := newContext(http.MethodGet, "ping", "")

	err := newHandler(&fields{}).Ping(ctx)

	assert.NoError(t, err)
	assert.Equal(t, `"healthy"`, recorder.Body.String())
}
