// @title           workhub API
// @version         1.0
// @description     Маркетплейс бытовых услуг: заявки, отклики, профили исполнителей.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /

package main

import "workhub_backend/internal/app"

func main() {
	app.Run()
}
