package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/auth"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/billing"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/ordering"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/session"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/usecase"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/infrastructure/apiclient"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/infrastructure/pdf"
	apphttp "github.com/Jumata96/InventarioInteligenteFrontend/internal/interfaces/http"
	"github.com/Jumata96/InventarioInteligenteFrontend/pkg/logger"
	"github.com/Jumata96/InventarioInteligenteFrontend/pkg/money"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp arma la consola completa contra una API falsa (httptest).
func buildTestApp(t *testing.T, api *http.ServeMux) (*fiber.App, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	log := logger.Nop()
	store, err := session.Open(context.Background(), session.NewMemoryStorage(), log)
	require.NoError(t, err)

	client := apiclient.New(apiclient.Config{BaseURL: srv.URL, PageBase: 1}, store, log)
	client.OnUnauthorized(store.HandleUnauthorized)

	productRepo := apiclient.NewProductRepository(client)
	clientRepo := apiclient.NewClientRepository(client)
	countryRepo := apiclient.NewCountryRepository(client)
	orderRepo := apiclient.NewOrderRepository(client)

	productUC := usecase.NewProductUseCase(productRepo, 5, 0, log)
	clientUC := usecase.NewClientUseCase(clientRepo, countryRepo, 5, 0, log)
	orderUC := usecase.NewOrderUseCase(orderRepo, 5, 0, log)
	builder := ordering.NewBuilder(orderRepo, countryRepo, log)
	format := money.NewFormatter(money.DefaultLocale, "S/")

	renderer, err := apphttp.NewRenderer(format)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(log)})
	apphttp.Router(app, apphttp.RouterDeps{
		Renderer:  renderer,
		Session:   store,
		AuthUC:    auth.NewAuthUseCase(apiclient.NewAuthRepository(client), store, log),
		ProductUC: productUC,
		ClientUC:  clientUC,
		Orders: apphttp.OrderDeps{
			Orders:   orderUC,
			Products: productUC,
			Clients:  clientUC,
			Builder:  builder,
			Invoices: billing.NewInvoiceFlow(apiclient.NewInvoiceRepository(client), orderUC, log),
			Proforma: billing.NewProformaUseCase(builder, pdf.NewProformaGenerator("Proforma", format)),
		},
		Log:     log,
		AppName: "consola-test",
	})
	return app, store
}

func loggedIn(t *testing.T, store *session.Store) {
	t.Helper()
	require.NoError(t, store.Login(context.Background(), "tok-123", "ana@example.com"))
}

func doGet(t *testing.T, app *fiber.App, target string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	return resp
}

func doPost(t *testing.T, app *fiber.App, target string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func productsPage(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"data": []map[string]any{
			{"productoId": 1, "nombre": "Laptop", "descripcion": "14 pulgadas", "precio": 2500, "stock": 3, "estado": 1},
			{"productoId": 2, "nombre": "Mouse", "precio": 50, "stock": 10, "estado": 2},
		},
		"totalCount": 2,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Guardia de rutas
// ──────────────────────────────────────────────────────────────────────────────

func TestGuard_SinSesionRedirigeALogin(t *testing.T) {
	app, _ := buildTestApp(t, http.NewServeMux())

	resp := doGet(t, app, "/clients")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestGuard_LoginEsPublico(t *testing.T) {
	app, _ := buildTestApp(t, http.NewServeMux())

	resp := doGet(t, app, "/login")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Iniciar sesión")
}

func TestGuard_RaizYDesconocidas(t *testing.T) {
	app, store := buildTestApp(t, http.NewServeMux())
	loggedIn(t, store)

	resp := doGet(t, app, "/")
	assert.Equal(t, "/products", resp.Header.Get("Location"))

	for _, path := range []string{"/no-existe", "/products/abc", "/orders/draft/otra"} {
		resp = doGet(t, app, path)
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode, path)
		assert.Equal(t, "/login", resp.Header.Get("Location"), path)
	}
}

func TestHealth(t *testing.T) {
	app, _ := buildTestApp(t, http.NewServeMux())

	resp := doGet(t, app, "/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "ok", out["status"])
	assert.Equal(t, false, out["authenticated"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_GuardaSesionYRedirige(t *testing.T) {
	api := http.NewServeMux()
	api.HandleFunc("POST /api/Auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"token": "tok-abc"})
	})
	app, store := buildTestApp(t, api)

	resp := doPost(t, app, "/login", url.Values{"email": {"ana@example.com"}, "password": {"secreto"}})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/products", resp.Header.Get("Location"))
	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "ana@example.com", store.Email())
	assert.Equal(t, "tok-abc", store.Token())
}

func TestLogin_CredencialesInvalidasMuestraMensajeDelServidor(t *testing.T) {
	api := http.NewServeMux()
	api.HandleFunc("POST /api/Auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Usuario o clave incorrectos"})
	})
	app, store := buildTestApp(t, api)

	resp := doPost(t, app, "/login", url.Values{"email": {"ana@example.com"}, "password": {"mala"}})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Usuario o clave incorrectos")
	assert.False(t, store.IsAuthenticated())
}

func TestRegister_ContrasenasDistintasNoLlamaALaAPI(t *testing.T) {
	var calls int32
	api := http.NewServeMux()
	api.HandleFunc("POST /api/Auth/register", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusOK)
	})
	app, _ := buildTestApp(t, api)

	resp := doPost(t, app, "/register", url.Values{
		"email": {"ana@example.com"}, "password": {"secreto1"}, "confirmPassword": {"secreto2"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Las contraseñas no coinciden")
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestRegister_ExitoVuelveALogin(t *testing.T) {
	api := http.NewServeMux()
	api.HandleFunc("POST /api/Auth/register", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	app, store := buildTestApp(t, api)

	resp := doPost(t, app, "/register", url.Values{
		"email": {"ana@example.com"}, "password": {"secreto1"}, "confirmPassword": {"secreto1"},
	})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Location"), "/login?ok="))
	assert.False(t, store.IsAuthenticated())
}

func TestLogout_LimpiaSesion(t *testing.T) {
	app, store := buildTestApp(t, http.NewServeMux())
	loggedIn(t, store)

	resp := doPost(t, app, "/logout", url.Values{})
	assert.Equal(t, "/login", resp.Header.Get("Location"))
	assert.False(t, store.IsAuthenticated())
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_ListaConAccionesPorEstado(t *testing.T) {
	api := http.NewServeMux()
	api.HandleFunc("GET /api/Productos/paged", productsPage)
	app, store := buildTestApp(t, api)
	loggedIn(t, store)

	resp := doGet(t, app, "/products")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	html := body(t, resp)
	assert.Contains(t, html, "Laptop")
	assert.Contains(t, html, "/products/1/disable")
	assert.Contains(t, html, "/products/2/enable")
	assert.Contains(t, html, "ana@example.com")
}

func TestLayout_MuestraVencimientoDelToken(t *testing.T) {
	api := http.NewServeMux()
	api.HandleFunc("GET /api/Productos/paged", productsPage)
	app, store := buildTestApp(t, api)

	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
		"email": "ana@example.com",
		"exp":   exp.Unix(),
	}).SignedString([]byte("x"))
	require.NoError(t, err)
	require.NoError(t, store.Login(context.Background(), tok, ""))

	resp := doGet(t, app, "/products")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	html := body(t, resp)
	assert.Contains(t, html, "ana@example.com")
	assert.Contains(t, html, "Sesión válida hasta "+exp.Format("02/01/2006 15:04"))
}

func TestProducts_401DuranteLaCargaCierraSesion(t *testing.T) {
	api := http.NewServeMux()
	api.HandleFunc("GET /api/Productos/paged", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Token expirado"})
	})
	app, store := buildTestApp(t, api)
	loggedIn(t, store)

	resp := doGet(t, app, "/products")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Location"), "/login"))
	assert.False(t, store.IsAuthenticated())
}

func TestProducts_FormularioInvalidoNoLlamaALaAPI(t *testing.T) {
	var posts int32
	api := http.NewServeMux()
	api.HandleFunc("POST /api/Productos", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&posts, 1)
		w.WriteHeader(http.StatusOK)
	})
	app, store := buildTestApp(t, api)
	loggedIn(t, store)

	resp := doPost(t, app, "/products", url.Values{"nombre": {"Mouse"}, "precio": {"0"}, "stock": {"1"}})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body(t, resp), "El precio debe ser mayor a 0")
	assert.Zero(t, atomic.LoadInt32(&posts))
}

func TestProducts_CrearRedirigeConAviso(t *testing.T) {
	var got map[string]any
	api := http.NewServeMux()
	api.HandleFunc("POST /api/Productos", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
	})
	api.HandleFunc("GET /api/Productos/paged", productsPage)
	app, store := buildTestApp(t, api)
	loggedIn(t, store)

	resp := doPost(t, app, "/products", url.Values{"nombre": {"Teclado"}, "precio": {"120.50"}, "stock": {"4"}})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Location"), "/products?ok="))
	assert.Equal(t, "Teclado", got["nombre"])
	assert.Equal(t, 120.5, got["precio"])
}

func TestProducts_EliminarSinConfirmacion(t *testing.T) {
	var deletes int32
	api := http.NewServeMux()
	api.HandleFunc("DELETE /api/Productos/{id}", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&deletes, 1)
		w.WriteHeader(http.StatusNoContent)
	})
	app, store := buildTestApp(t, api)
	loggedIn(t, store)

	resp := doPost(t, app, "/products/1/delete", url.Values{})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Location"), "err=")
	assert.Zero(t, atomic.LoadInt32(&deletes))
}

func TestProducts_BusquedaDevuelveFragmento(t *testing.T) {
	var lastQ atomic.Value
	api := http.NewServeMux()
	api.HandleFunc("GET /api/Productos/paged", func(w http.ResponseWriter, r *http.Request) {
		lastQ.Store(r.URL.Query().Get("q"))
		productsPage(w, r)
	})
	app, store := buildTestApp(t, api)
	loggedIn(t, store)

	resp := doGet(t, app, "/products/search?q=lap")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	html := body(t, resp)
	assert.Contains(t, html, "<table>")
	assert.NotContains(t, html, "<html")
	assert.Equal(t, "lap", lastQ.Load())
}

func TestProducts_BusquedaFallidaMuestraAviso(t *testing.T) {
	api := http.NewServeMux()
	api.HandleFunc("GET /api/Productos/paged", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") != "" {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "Base de datos caída"})
			return
		}
		productsPage(w, r)
	})
	app, store := buildTestApp(t, api)
	loggedIn(t, store)

	resp := doGet(t, app, "/products")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Laptop")

	resp = doGet(t, app, "/products/search?q=lap")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	html := body(t, resp)
	assert.Contains(t, html, `role="alert"`)
	assert.Contains(t, html, "Base de datos caída")
	assert.NotContains(t, html, "Laptop")
}

func TestOrders_BusquedaFallidaUsaMensajeDeRespaldo(t *testing.T) {
	api := http.NewServeMux()
	api.HandleFunc("GET /api/Pedidos/paged", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	app, store := buildTestApp(t, api)
	loggedIn(t, store)

	resp := doGet(t, app, "/orders/search?q=7")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, body(t, resp), "No se pudieron cargar los pedidos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestClients_CamposObligatorios(t *testing.T) {
	api := http.NewServeMux()
	api.HandleFunc("GET /api/Paises", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{{"paisId": 1, "nombre": "Perú"}})
	})
	app, store := buildTestApp(t, api)
	loggedIn(t, store)

	resp := doPost(t, app, "/clients", url.Values{"ruc": {"20123456789"}, "nombre": {""}})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	html := body(t, resp)
	assert.Contains(t, html, "Completa todos los campos obligatorios")
	assert.Contains(t, html, "Perú")
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedidos
// ──────────────────────────────────────────────────────────────────────────────

func TestOrders_FacturarEmiteYRedirigeAlPDF(t *testing.T) {
	var issued int32
	api := http.NewServeMux()
	api.HandleFunc("GET /api/Facturas/pedido/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	api.HandleFunc("POST /api/Facturas/emitir/{id}", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&issued, 1)
		writeJSON(w, http.StatusOK, map[string]any{
			"facturaId": 9, "pedidoId": 7, "numeroFactura": "F001-9", "urlPdf": "https://facturas.example.com/F001-9.pdf",
		})
	})
	api.HandleFunc("GET /api/Pedidos/paged", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"data": []any{}, "totalCount": 0})
	})
	app, store := buildTestApp(t, api)
	loggedIn(t, store)

	resp := doPost(t, app, "/orders/7/invoice", url.Values{})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "https://facturas.example.com/F001-9.pdf", resp.Header.Get("Location"))
	assert.EqualValues(t, 1, atomic.LoadInt32(&issued))
}

func TestOrders_FacturarFallaMuestraAviso(t *testing.T) {
	api := http.NewServeMux()
	api.HandleFunc("GET /api/Facturas/pedido/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	app, store := buildTestApp(t, api)
	loggedIn(t, store)

	resp := doPost(t, app, "/orders/7/invoice", url.Values{})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/orders", loc.Path)
	assert.Equal(t, "Error al facturar", loc.Query().Get("err"))
}

func TestOrders_ProformaConBorradorVacio(t *testing.T) {
	app, store := buildTestApp(t, http.NewServeMux())
	loggedIn(t, store)

	resp := doGet(t, app, "/orders/draft/proforma.pdf")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "Agregue al menos un producto", loc.Query().Get("err"))
}

func TestOrders_AgregarLineaYDescargarProforma(t *testing.T) {
	api := http.NewServeMux()
	api.HandleFunc("GET /api/Productos", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{"productoId": 1, "nombre": "Laptop", "precio": 2500, "stock": 3, "estado": 1},
		})
	})
	app, store := buildTestApp(t, api)
	loggedIn(t, store)

	resp := doPost(t, app, "/orders/draft/lines", url.Values{"productoId": {"1"}, "cantidad": {"5"}})
	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "La cantidad supera el stock disponible", loc.Query().Get("err"))

	resp = doPost(t, app, "/orders/draft/lines", url.Values{"productoId": {"1"}, "cantidad": {"2"}})
	assert.Equal(t, "/orders", resp.Header.Get("Location"))

	resp = doGet(t, app, "/orders/draft/proforma.pdf")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "proforma-")
	assert.True(t, strings.HasPrefix(body(t, resp), "%PDF"))
}

func TestOrders_DetalleDelPedido(t *testing.T) {
	api := http.NewServeMux()
	api.HandleFunc("GET /api/Pedidos/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"pedidoId": 7, "clienteId": 3, "paisId": 1, "estado": "Registrado",
			"detalles": []map[string]any{{"productoId": 1, "nombreProducto": "Laptop", "cantidad": 1, "precioUnitario": 2500, "subtotal": 2500}},
			"subtotal": 2500, "descuento": 0, "impuesto": 450, "total": 2950,
		})
	})
	app, store := buildTestApp(t, api)
	loggedIn(t, store)

	resp := doGet(t, app, "/orders/7")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	html := body(t, resp)
	assert.Contains(t, html, "Pedido #7")
	assert.Contains(t, html, "Laptop")
	assert.Contains(t, html, "Registrado")
}

func TestOrders_ArmarYRegistrarPedido(t *testing.T) {
	var sent map[string]any
	api := http.NewServeMux()
	api.HandleFunc("GET /api/Clientes", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{"clienteId": 3, "ruc": "20123456789", "nombre": "Comercial Lima", "paisId": 1, "paisNombre": "Perú", "estado": 1},
		})
	})
	api.HandleFunc("GET /api/Productos", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{"productoId": 1, "nombre": "Laptop", "precio": 2500, "stock": 3, "estado": 1},
		})
	})
	api.HandleFunc("GET /api/Impuestos/pais/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{{"impuestoId": 1, "paisId": 1, "nombre": "IGV", "porcentaje": 18}})
	})
	api.HandleFunc("POST /api/Pedidos/calcular-descuento", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"subtotal": 2500, "descuento": 0, "total": 2500})
	})
	api.HandleFunc("POST /api/Pedidos", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&sent)
		writeJSON(w, http.StatusCreated, map[string]any{"pedidoId": 11, "clienteId": 3, "paisId": 1})
	})
	api.HandleFunc("GET /api/Pedidos/paged", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"data": []any{}, "totalCount": 0})
	})
	app, store := buildTestApp(t, api)
	loggedIn(t, store)

	resp := doPost(t, app, "/orders/draft/submit", url.Values{})
	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "Seleccione un cliente", loc.Query().Get("err"))
	assert.Nil(t, sent)

	resp = doPost(t, app, "/orders/draft/client", url.Values{"clienteId": {"3"}})
	assert.Equal(t, "/orders", resp.Header.Get("Location"))
	resp = doPost(t, app, "/orders/draft/lines", url.Values{"productoId": {"1"}, "cantidad": {"1"}})
	assert.Equal(t, "/orders", resp.Header.Get("Location"))

	resp = doPost(t, app, "/orders/draft/submit", url.Values{})
	loc, err = url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/orders", loc.Path)
	assert.Equal(t, "Pedido #11 registrado", loc.Query().Get("ok"))
	require.NotNil(t, sent)
	assert.EqualValues(t, 3, sent["clienteId"])
	assert.EqualValues(t, 1, sent["paisId"])
	detalles, ok := sent["detalles"].([]any)
	require.True(t, ok)
	assert.Len(t, detalles, 1)

	// el borrador se reinicia tras registrar
	resp = doGet(t, app, "/orders/draft/proforma.pdf")
	loc, err = url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "Agregue al menos un producto", loc.Query().Get("err"))
}

func TestOrders_CantidadNoNumericaMuestraAviso(t *testing.T) {
	var calls int32
	api := http.NewServeMux()
	api.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	})
	app, store := buildTestApp(t, api)
	loggedIn(t, store)

	for _, target := range []string{"/orders/draft/lines", "/orders/draft/lines/1"} {
		for _, raw := range []string{"abc", "2.5"} {
			resp := doPost(t, app, target, url.Values{"productoId": {"1"}, "cantidad": {raw}})
			require.Equal(t, http.StatusSeeOther, resp.StatusCode, target+" "+raw)
			loc, err := url.Parse(resp.Header.Get("Location"))
			require.NoError(t, err)
			assert.Equal(t, "/orders", loc.Path)
			assert.Equal(t, "La cantidad debe ser al menos 1", loc.Query().Get("err"), target+" "+raw)
		}
	}
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestOrders_ClienteNoNumericoMuestraAviso(t *testing.T) {
	app, store := buildTestApp(t, http.NewServeMux())
	loggedIn(t, store)

	resp := doPost(t, app, "/orders/draft/client", url.Values{"clienteId": {"abc"}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "Seleccione un cliente", loc.Query().Get("err"))
}
