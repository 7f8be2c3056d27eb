// Package docs holds the OpenAPI document of the pathway JSON API.
package docs

// @title Career Pathway API
// @version 1.0
// @description Reads and edits the nodes of the career pathway.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
