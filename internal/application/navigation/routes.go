// Package navigation tabla de rutas de la consola, guardia de autenticación y
// decisión de redirección ante un 401.
package navigation

import "strings"

// Rutas de la consola.
const (
	RouteRoot     = "/"
	RouteLogin    = "/login"
	RouteRegister = "/register"
	RouteProducts = "/products"
	RouteClients  = "/clients"
	RouteOrders   = "/orders"
	RouteLogout   = "/logout"
)

// Route entrada de la tabla de rutas.
type Route struct {
	Path   string
	Title  string
	Public bool // accesible sin sesión
	Menu   bool // aparece en el menú lateral
}

var routes = []Route{
	{Path: RouteLogin, Title: "Iniciar sesión", Public: true},
	{Path: RouteRegister, Title: "Registro", Public: true},
	{Path: RouteLogout, Title: "Salir", Public: true},
	{Path: RouteProducts, Title: "Productos", Menu: true},
	{Path: RouteClients, Title: "Clientes", Menu: true},
	{Path: RouteOrders, Title: "Pedidos", Menu: true},
}

// Resolve busca la ruta que atiende path (incluye subrutas como /products/3/delete).
func Resolve(path string) (Route, bool) {
	path = clean(path)
	for _, r := range routes {
		if path == r.Path || strings.HasPrefix(path, r.Path+"/") {
			return r, true
		}
	}
	return Route{}, false
}

// Menu entradas del menú lateral, en orden.
func Menu() []Route {
	out := make([]Route, 0, len(routes))
	for _, r := range routes {
		if r.Menu {
			out = append(out, r)
		}
	}
	return out
}

// Guard decide si path puede servirse. Devuelve la ruta de redirección y false
// cuando no: la raíz lleva a /products, lo desconocido a /login y las rutas
// del panel sin sesión a /login.
func Guard(path string, authenticated bool) (string, bool) {
	path = clean(path)
	if path == RouteRoot {
		return RouteProducts, false
	}
	r, ok := Resolve(path)
	if !ok {
		return RouteLogin, false
	}
	if !r.Public && !authenticated {
		return RouteLogin, false
	}
	return "", true
}

// AfterUnauthorized destino tras un 401 de la API: /login, salvo que ya se
// esté en /login.
func AfterUnauthorized(current string) (string, bool) {
	if clean(current) == RouteLogin {
		return "", false
	}
	return RouteLogin, true
}

// Active indica si el menú de la ruta r debe marcarse para path.
func Active(r Route, path string) bool {
	current, ok := Resolve(path)
	return ok && current.Path == r.Path
}

func clean(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return RouteRoot
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			return RouteRoot
		}
	}
	return path
}
