package handlers

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	detail "github.com/doitintl/product-catalog/catalogdetail/domain"
	"github.com/doitintl/product-catalog/framework/web"
	"github.com/doitintl/product-catalog/frontend/assets"
	"github.com/doitintl/product-catalog/frontend/client/mocks"
	"github.com/doitintl/product-catalog/frontend/domain"
	"github.com/doitintl/product-catalog/logger"
	loggerMocks "github.com/doitintl/product-catalog/logger/mocks"
)

type fields struct {
	loggerProviderMock loggerMocks.ILogger
	client             mocks.CatalogClient
}

func newHandler(f *fields, variant domain.Variant, respondOnUpstreamError bool) *Frontend {
	return &Frontend{
		loggerProvider: func(ctx context.Context) logger.ILogger {
			return &f.loggerProviderMock
		},
		client:                 &f.client,
		variant:                variant,
		respondOnUpstreamError: respondOnUpstreamError,
	}
}

func newContext(method, target string, body *strings.Reader) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	ctx, engine := gin.CreateTestContext(recorder)
	engine.SetHTMLTemplate(assets.Templates())

	if body == nil {
		body = strings.NewReader("")
	}

	ctx.Request = httptest.NewRequest(method, target, body)

	return ctx, recorder
}

func TestFrontend_Index(t *testing.T) {
	catalog := &domain.Catalog{
		Products: domain.Products{{ID: "1", Name: "Widget"}, {ID: "2", Name: "Gadget"}},
		Details:  &detail.CatalogDetail{Version: "2", Vendors: []string{"ABC.com", "XYZ.com"}},
	}

	tests := []struct {
		name         string
		variant      domain.Variant
		on           func(*fields)
		wantContains []string
		wantMissing  []string
	}{
		{
			name:    "detailed variant renders products and details",
			variant: domain.VariantDetailed,
			on: func(f *fields) {
				f.client.On("GetCatalog", mock.AnythingOfType("*gin.Context"), true).
					Return(catalog, nil).
					Once()
				f.loggerProviderMock.On("Info", getSucceeded).Once()
			},
			wantContains: []string{"Widget", "Gadget", "ABC.com", "XYZ.com", "Version: 2"},
		},
		{
			name:    "basic variant renders products only",
			variant: domain.VariantBasic,
			on: func(f *fields) {
				f.client.On("GetCatalog", mock.AnythingOfType("*gin.Context"), false).
					Return(catalog, nil).
					Once()
				f.loggerProviderMock.On("Info", getSucceeded).Once()
			},
			wantContains: []string{"Widget", "Gadget"},
			wantMissing:  []string{"ABC.com", "Version:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fields{}
			tt.on(f)

			ctx, recorder := newContext(http.MethodGet, "/", nil)

			err := newHandler(f, tt.variant, false).Index(ctx)
			assert.NoError(t, err)

			assert.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, "text/html; charset=utf-8", recorder.Header().Get("Content-Type"))

			for _, s := range tt.wantContains {
				assert.Contains(t, recorder.Body.String(), s)
			}

			for _, s := range tt.wantMissing {
				assert.NotContains(t, recorder.Body.String(), s)
			}

			f.client.AssertExpectations(t)
			f.loggerProviderMock.AssertExpectations(t)
		})
	}
}

func TestFrontend_IndexIgnoresQueryStr(t *testing.T) {
	f := &fields{}
	f.client.On("GetCatalog", mock.AnythingOfType("*gin.Context"), true).
		Return(&domain.Catalog{Products: domain.Products{}, Details: &detail.CatalogDetail{}}, nil).
		Once()
	f.loggerProviderMock.On("Debugf", mock.Anything, "anything").Once()
	f.loggerProviderMock.On("Info", getSucceeded).Once()

	ctx, recorder := newContext(http.MethodGet, "/?queryStr=anything", nil)

	err := newHandler(f, domain.VariantDetailed, false).Index(ctx)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)

	f.loggerProviderMock.AssertExpectations(t)
}

func TestFrontend_IndexUpstreamFailure(t *testing.T) {
	upstreamErr := errors.New("connection refused")

	t.Run("answers 502 when configured", func(t *testing.T) {
		f := &fields{}
		f.client.On("GetCatalog", mock.AnythingOfType("*gin.Context"), true).Return(nil, upstreamErr).Once()
		f.loggerProviderMock.On("Error", upstreamErr).Once()
		f.loggerProviderMock.On("Error", getFailed).Once()

		ctx, _ := newContext(http.MethodGet, "/", nil)

		err := newHandler(f, domain.VariantDetailed, true).Index(ctx)

		var webErr *web.Error
		assert.ErrorAs(t, err, &webErr)
		assert.Equal(t, http.StatusBadGateway, webErr.Status)
		assert.ErrorIs(t, err, upstreamErr)
		assert.ErrorIs(t, err, web.ErrBadGateway)
	})

	t.Run("writes nothing and waits for the client by default", func(t *testing.T) {
		f := &fields{}
		f.client.On("GetCatalog", mock.AnythingOfType("*gin.Context"), true).Return(nil, upstreamErr).Once()
		f.loggerProviderMock.On("Error", upstreamErr).Once()
		f.loggerProviderMock.On("Error", getFailed).Once()

		ctx, _ := newContext(http.MethodGet, "/", nil)

		reqCtx, cancel := context.WithCancel(ctx.Request.Context())
		cancel()
		ctx.Request = ctx.Request.WithContext(reqCtx)

		err := newHandler(f, domain.VariantDetailed, false).Index(ctx)

		assert.NoError(t, err)
		assert.False(t, ctx.Writer.Written())
		f.loggerProviderMock.AssertExpectations(t)
	})
}

func TestFrontend_CreateProduct(t *testing.T) {
	tests := []struct {
		name         string
		referer      string
		on           func(*fields)
		wantLocation string
	}{
		{
			name:    "redirects to referer",
			referer: "http://frontend.local/?queryStr=x",
			on: func(f *fields) {
				f.client.On("CreateProduct", mock.AnythingOfType("*gin.Context"),
					domain.ProductCreateRequest{ID: "42", Name: "Widget"}).
					Return(nil).
					Once()
				f.loggerProviderMock.On("Info", postSucceeded).Once()
			},
			wantLocation: "http://frontend.local/?queryStr=x",
		},
		{
			name: "redirects to index without referer",
			on: func(f *fields) {
				f.client.On("CreateProduct", mock.AnythingOfType("*gin.Context"),
					domain.ProductCreateRequest{ID: "42", Name: "Widget"}).
					Return(nil).
					Once()
				f.loggerProviderMock.On("Info", postSucceeded).Once()
			},
			wantLocation: "/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fields{}
			tt.on(f)

			form := url.Values{"id": {"42"}, "name": {"Widget"}}
			ctx, recorder := newContext(http.MethodPost, "/products", strings.NewReader(form.Encode()))
			ctx.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			if tt.referer != "" {
				ctx.Request.Header.Set("Referer", tt.referer)
			}

			err := newHandler(f, domain.VariantDetailed, false).CreateProduct(ctx)
			assert.NoError(t, err)

			ctx.Writer.WriteHeaderNow()

			assert.Equal(t, http.StatusFound, recorder.Code)
			assert.Equal(t, tt.wantLocation, recorder.Header().Get("Location"))

			f.client.AssertExpectations(t)
			f.loggerProviderMock.AssertExpectations(t)
		})
	}
}

func TestFrontend_CreateProductUpstreamFailure(t *testing.T) {
	upstreamErr := domain.ErrUpstreamStatus

	t.Run("answers 502 when configured", func(t *testing.T) {
		f := &fields{}
		f.client.On("CreateProduct", mock.AnythingOfType("*gin.Context"), mock.Anything).Return(upstreamErr).Once()
		f.loggerProviderMock.On("Error", upstreamErr).Once()

		form := url.Values{"id": {"x"}, "name": {"Widget"}}
		ctx, _ := newContext(http.MethodPost, "/products", strings.NewReader(form.Encode()))
		ctx.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		err := newHandler(f, domain.VariantBasic, true).CreateProduct(ctx)

		var webErr *web.Error
		assert.ErrorAs(t, err, &webErr)
		assert.Equal(t, http.StatusBadGateway, webErr.Status)
		assert.ErrorIs(t, err, upstreamErr)
	})

	t.Run("writes nothing and waits for the client by default", func(t *testing.T) {
		f := &fields{}
		f.client.On("CreateProduct", mock.AnythingOfType("*gin.Context"), mock.Anything).Return(upstreamErr).Once()
		f.loggerProviderMock.On("Error", upstreamErr).Once()

		form := url.Values{"id": {"42"}, "name": {"Widget"}}
		ctx, _ := newContext(http.MethodPost, "/products", strings.NewReader(form.Encode()))
		ctx.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		reqCtx, cancel := context.WithCancel(ctx.Request.Context())
		cancel()
		ctx.Request = ctx.Request.WithContext(reqCtx)

		err := newHandler(f, domain.VariantBasic, false).CreateProduct(ctx)

		assert.NoError(t, err)
		assert.False(t, ctx.Writer.Written())
		f.loggerProviderMock.AssertExpectations(t)
	})
}

func TestFrontend_IndexRenderFailure(t *testing.T) {
	catalog := &domain.Catalog{Products: domain.Products{{ID: "1", Name: "Widget"}}}

	// the engine only knows a template other than the index page
	newBrokenContext := func() *gin.Context {
		gin.SetMode(gin.TestMode)

		ctx, engine := gin.CreateTestContext(httptest.NewRecorder())
		engine.SetHTMLTemplate(template.Must(template.New("other.html").Parse("")))
		ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		return ctx
	}

	t.Run("answers 500 when configured", func(t *testing.T) {
		f := &fields{}
		f.client.On("GetCatalog", mock.AnythingOfType("*gin.Context"), false).Return(catalog, nil).Once()
		f.loggerProviderMock.On("Errorf", mock.Anything, indexPage, mock.Anything).Once()

		ctx := newBrokenContext()

		err := newHandler(f, domain.VariantBasic, true).Index(ctx)

		var webErr *web.Error
		assert.ErrorAs(t, err, &webErr)
		assert.Equal(t, http.StatusInternalServerError, webErr.Status)
		assert.ErrorIs(t, err, web.ErrInternalServerError)
		f.loggerProviderMock.AssertExpectations(t)
	})

	t.Run("writes nothing and waits for the client by default", func(t *testing.T) {
		f := &fields{}
		f.client.On("GetCatalog", mock.AnythingOfType("*gin.Context"), false).Return(catalog, nil).Once()
		f.loggerProviderMock.On("Errorf", mock.Anything, indexPage, mock.Anything).Once()

		ctx := newBrokenContext()

		reqCtx, cancel := context.WithCancel(ctx.Request.Context())
		cancel()
		ctx.Request = ctx.Request.WithContext(reqCtx)

		err := newHandler(f, domain.VariantBasic, false).Index(ctx)

		assert.NoError(t, err)
		assert.False(t, ctx.Writer.Written())
		f.loggerProviderMock.AssertExpectations(t)
	})
}

func TestFrontend_Ping(t *testing.T) {
	ctx, recorder := newContext(http.MethodGet, "/ping", nil)

	err := newHandler(&fields{}, domain.VariantBasic, false).Ping(ctx)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, `"Healthy"`, recorder.Body.String())
}
