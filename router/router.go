// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/danielhkuo/todolists/cliparse"
	"github.com/danielhkuo/todolists/handlers"
	"github.com/danielhkuo/todolists/middleware"
)

func NewRouter(db *gorm.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	todoHandler := handlers.NewTodoHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Every page route answers GET and POST
	routes := []struct {
		path    string
		handler http.HandlerFunc
	}{
		{"/{$}", todoHandler.CreateList},
		{"/all_lists", todoHandler.AllLists},
		{"/list/{id}", todoHandler.OneList},
		{"/update/{item}", todoHandler.UpdateItem},
		{"/delete/{list_title}", todoHandler.DeleteList},
		{"/delete_item/{item_description}", todoHandler.DeleteItem},
	}
	for _, route := range routes {
		h := middleware.WithLogging(route.handler)
		mux.HandleFunc("GET "+route.path, h)
		mux.HandleFunc("POST "+route.path, h)
	}

	return mux
}
