package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	parserHTTP "nl-task-parser/internal/parser/delivery/http"
	"nl-task-parser/internal/test"
)

// setupParserDomain registers the parse, health and diagnostic routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase in main and pass it through Config
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(rg, h)
func (srv HTTPServer) setupParserDomain(ctx context.Context, rg gin.IRouter) error {
	h := parserHTTP.New(srv.l, srv.parserUC)
	parserHTTP.RegisterRoutes(rg, h)

	testHandler := test.New(srv.l, srv.parserUC)
	rg.GET("/test", testHandler.HandleSampleParse)

	srv.l.Infof(ctx, "Parser domain registered: POST /parse, GET /health, GET /test")
	return nil
}
