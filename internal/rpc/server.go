package rpc

import (
	"log/slog"
	"net/http"

	"github.com/daniilsolovey/news-website/internal/newsportal"
	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"
)

type Managers struct {
	Categories *newsportal.CategoryManager
	News       *newsportal.NewsManager
	Users      *newsportal.UserManager
}

// New returns the JSON-RPC 2.0 handler with the news, category and user namespaces.
func New(logger *slog.Logger, managers Managers, tokens TokenIssuer) http.Handler {
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("news", NewNewsService(managers.News))
	rpcServer.Register("category", NewCategoryService(managers.Categories))
	rpcServer.Register("user", NewUserService(managers.Users, tokens))
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "news-website", nil))

	return rpcServer
}
