package main

import (
	"github.com/synzk/hub-backend/internal/server"
)

func main() {
	server.Init()
}
