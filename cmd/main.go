package main

import (
	"os"

	"sportsbook/cmd/cli"

	"github.com/gin-gonic/gin"
)

func init() {
	// fail safe: never expose debug output because of a missing setting
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           sportsbook
// @version         1.0
// @description     Room booking for a sports complex: members, availability search, bookings and cancellations.

// @BasePath  /
// @schemes http https
func main() {
	cli.Execute()
}
