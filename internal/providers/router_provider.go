package providers

import (
	"dsatrack/internal/structures"
	"net/http"
)

type RouterProviderInterface interface {
	Get(url string, handler http.Handler)
	Post(url string, handler http.Handler)
	Put(url string, handler http.Handler)
	Delete(url string, handler http.Handler)
	GetRoutes() []structures.Route
}

type RouterProvider struct {
	routes []structures.Route
}

func (rp *RouterProvider) add(method, url string, handler http.Handler) {
	rp.routes = append(rp.routes, structures.Route{
		Method:  method,
		Url:     url,
		Handler: methodHandler(method, handler),
	})
}

func (rp *RouterProvider) Get(url string, handler http.Handler) {
	rp.add(http.MethodGet, url, handler)
}

func (rp *RouterProvider) Post(url string, handler http.Handler) {
	rp.add(http.MethodPost, url, handler)
}

func (rp *RouterProvider) Put(url string, handler http.Handler) {
	rp.add(http.MethodPut, url, handler)
}

func (rp *RouterProvider) Delete(url string, handler http.Handler) {
	rp.add(http.MethodDelete, url, handler)
}

func (rp *RouterProvider) GetRoutes() []structures.Route {
	return rp.routes
}

func NewRouterProvider() RouterProviderInterface {
	return &RouterProvider{}
}

func methodHandler(method string, handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		handler.ServeHTTP(w, r)
	})
}
