package api

import (
	"bytes"
	"database/sql"
	"fmt"
	"io"
	"time"

	"fintudo/internal/db/models/postgres/public/model"
	"fintudo/internal/repository"
	"fintudo/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db                    *sql.DB
	PortfolioService      service.PortfolioService
	UserAccountRepository repository.UserAccountRepository
	ApiRequestRepository  repository.ApiRequestRepository
	JwtDecodeSecret       string
}

func int64Ptr(i int64) *int64 {
	return &i
}
func int32Ptr(i int32) *int32 {
	return &i
}
func strPtr(s string) *string {
	return &s
}

// InitializeRouterEngine builds the full router. It is split from StartApi
// so the Lambda entrypoint can wrap the same engine.
func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to fintudo"})
	})

	authorized := router.Group("/")
	authorized.Use(m.authMiddleware)

	authorized.GET("/portfolio", m.getPortfolio)
	authorized.GET("/assets/:ticker", m.getAsset)
	authorized.GET("/history", m.getHistory)
	authorized.GET("/history/export", m.exportHistory)
	authorized.GET("/income/summary", m.getIncomeSummary)
	authorized.POST("/transactions", m.addTransaction)
	authorized.PUT("/transactions/:id", m.updateTransaction)
	authorized.DELETE("/transactions/:id", m.deleteTransaction)
	authorized.POST("/dividends", m.addDividend)
	authorized.DELETE("/dividends/:id", m.deleteDividend)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	zap.S().Error(err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	zap.S().Error(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// getUserAccountID reads the account id the auth middleware stored on the
// request context.
func getUserAccountID(c *gin.Context) (uuid.UUID, error) {
	ginUserAccountID, ok := c.Get("userAccountID")
	if !ok {
		return uuid.Nil, fmt.Errorf("must be logged in")
	}
	userAccountIDStr, ok := ginUserAccountID.(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("misformatted user account id")
	}
	return uuid.Parse(userAccountIDStr)
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		zap.S().Warnf("failed to get raw data: %v", err)
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(m.Db, model.APIRequest{
		IPAddress:   strPtr(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: strPtr(string(body)),
		StartTs:     start,
	})
	if err != nil {
		zap.S().Warn(err)
	}

	ctx.Next()

	if req != nil {
		// the auth middleware has run by now, so the request row can be
		// tied to the account that made it
		if userAccountID, err := getUserAccountID(ctx); err == nil {
			req.UserID = &userAccountID
		}
		req.DurationMs = int64Ptr(time.Since(start).Milliseconds())
		req.StatusCode = int32Ptr(int32(ctx.Writer.Status()))
		req.ResponseBody = strPtr(w.body.String())

		err = m.ApiRequestRepository.Update(m.Db, *req)
		if err != nil {
			zap.S().Warn(err)
		}
	}
}
