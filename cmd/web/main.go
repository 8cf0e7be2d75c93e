// @title           SkillNet API
// @version         1.0
// @description     REST API for the SkillNet skill-sharing platform.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1

package main

import (
	"skillnet_backend/internal/app"

	_ "skillnet_backend/docs"
)

func main() {
	app.Run()
}
