package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kunal12203/LifeGoal-Game/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	return func(ginCtx *gin.Context) {
		ctx := xcontext.WithRequestState(router.ctx)
		ctx = xcontext.WithHTTPRequest(ctx, ginCtx.Request)

		defer func() {
			for _, closer := range router.closers {
				closer(ctx)
			}
		}()

		var req Request
		var err error
		switch method {
		case http.MethodGet:
			err = ginCtx.ShouldBindQuery(&req)
		case http.MethodPost:
			err = ginCtx.ShouldBindJSON(&req)
		}
		if err != nil {
			writeError(ctx, ginCtx, err)
			return
		}

		for _, before := range router.befores {
			newCtx, err := before(ctx)
			if err != nil {
				writeError(ctx, ginCtx, err)
				return
			}

			if newCtx != nil {
				ctx = newCtx
			}
		}

		resp, err := handler(ctx, &req)
		if err != nil {
			writeError(ctx, ginCtx, err)
			return
		}

		xcontext.SetResponse(ctx, resp)
		ginCtx.JSON(http.StatusOK, newResponse(resp))
	}
}

func writeError(ctx context.Context, ginCtx *gin.Context, err error) {
	xcontext.SetError(ctx, err)
	ginCtx.JSON(http.StatusOK, newErrorResponse(err))
}
