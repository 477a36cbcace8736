package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openrelief/relief-api/background"
	"github.com/openrelief/relief-api/external/classifier"
	"github.com/openrelief/relief-api/external/geoinfo"
	"github.com/openrelief/relief-api/logmodule"
	"github.com/openrelief/relief-api/realtime"
	"github.com/openrelief/relief-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.ReliefCore
	mongoStore store.MongoStore

	// Change bus shared by stores and the websocket feed
	bus *realtime.Bus

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// External services
	classifier classifier.Classifier
	geoClient  geoinfo.GeoInfo

	// job pool enqueuer
	backgroundEnqueuer *background.Enqueuer
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoClient *mongo.Client,
	bus *realtime.Bus,
	jwtKey *rsa.PrivateKey,
	cls classifier.Classifier,
	geoClient geoinfo.GeoInfo,
	enqueuer *background.Enqueuer) *Server {
	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	return &Server{
		store:              store.NewReliefStore(ormDB, mongoStore, bus),
		mongoStore:         mongoStore,
		bus:                bus,
		jwtPrivateKey:      jwtKey,
		classifier:         cls,
		geoClient:          geoClient,
		backgroundEnqueuer: enqueuer,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	apiRoute.POST("/auth", s.requestJWT)
	apiRoute.POST("/accounts", s.accountRegister)

	// the serverless passthroughs stay open to browser clients
	functionRoute := apiRoute.Group("/functions")
	functionRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	{
		functionRoute.GET("/map-token", s.getMapToken)
		functionRoute.POST("/classify-request", s.classifyRequest)
	}

	// read-only listings feed the map view, which is browsable without a
	// session; only posting and responding require one
	apiRoute.GET("/requests", s.listHelpRequests)
	apiRoute.GET("/requests/:requestID", s.getHelpRequest)
	apiRoute.GET("/map/features", s.mapFeatures)

	// api routes below apply the authorization middleware
	apiRoute.Use(s.authMiddleware())

	accountRoute := apiRoute.Group("/accounts")
	accountRoute.Use(s.recognizeAccountMiddleware())
	{
		accountRoute.GET("/me", s.accountDetail)
		accountRoute.PATCH("/me/location", s.accountUpdateLocation)
	}

	requestRoute := apiRoute.Group("/requests")
	{
		requestRoute.POST("", s.createHelpRequest)
		requestRoute.PATCH("/:requestID", s.updateHelpRequest)
		requestRoute.POST("/:requestID/respond", s.respondToHelpRequest)
	}

	geoRoute := apiRoute.Group("/geo")
	{
		geoRoute.GET("/address", s.resolveAddress)
	}

	wsRoute := r.Group("/ws")
	wsRoute.Use(logmodule.Ginrus("Realtime"))
	{
		wsRoute.GET("/changes", s.changeFeed)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"system_version": "Relief 0.1",
			"docs":           viper.GetStringMap("docs"),
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
