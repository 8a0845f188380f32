// @title           The Boardroom API
// @version         1.0
// @description     Backend for The Boardroom business summit website.
// @contact.name    The Boardroom
// @contact.email   hello@theboardroom.events
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1

package main

import "github.com/whvsdan/theboardroom/internal/app"

func main() {
	app.Run()
}
