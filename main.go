package main

import (
	"fmt"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
	"log"
	"os"
	_ "pumpsizer/docs"
	"pumpsizer/handler"
	"pumpsizer/model"
	"pumpsizer/pkg/conf"
	"pumpsizer/pkg/logger"
	"pumpsizer/service"
	"time"
)

var db *gorm.DB

// @title        Pumpsizer API
// @version      1.0
// @description  Centrifugal pump sizing: friction losses, total manometric head, NPSH margin and system curves.

// @host     localhost:12581
// @BasePath /v1

func main() {
	conf.InitConf("./pumpsizer.yaml")
	logger.InitLogger("pumpsizer")

	var err error
	db, err = gorm.Open(mysql.Open(primaryDSN()), &gorm.Config{
		Logger: gormLogger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), gormLogger.Config{
			SlowThreshold: time.Second,
			LogLevel:      gormLogger.Warn,
			Colorful:      true,
		}),
	})
	if err != nil {
		logger.Logger.Errorf("failed to connect database: %v", err)
		return
	}

	if replicas := conf.Conf.GetStringSlice("database.replicas"); len(replicas) > 0 {
		dialectors := make([]gorm.Dialector, 0, len(replicas))
		for _, dsn := range replicas {
			dialectors = append(dialectors, mysql.Open(dsn))
		}
		if err = db.Use(dbresolver.Register(dbresolver.Config{Replicas: dialectors})); err != nil {
			logger.Logger.Errorf("failed to register read replicas: %v", err)
			return
		}
	}

	if err = db.AutoMigrate(&model.PipeMaterial{}, &model.CalculationCase{}); err != nil {
		logger.Logger.Errorf("failed to migrate schema: %v", err)
		return
	}

	reports, err := service.NewLocalReportStore(conf.Conf.GetString("reports.dir"))
	if err != nil {
		logger.Logger.Errorf("failed to prepare report store: %v", err)
		return
	}
	svc, err := service.NewService(db, reports)
	if err != nil {
		logger.Logger.Errorf("failed to init service: %v", err)
		return
	}

	r := SetupRouter(svc)
	addr := fmt.Sprintf(":%d", conf.Conf.GetInt("server.port"))
	logger.Logger.Infof("listening on %s", addr)
	_ = r.Run(addr)
}

func primaryDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		conf.Conf.GetString("database.user"),
		conf.Conf.GetString("database.password"),
		conf.Conf.GetString("database.host"),
		conf.Conf.GetInt("database.port"),
		conf.Conf.GetString("database.name"),
		conf.Conf.GetString("database.params"),
	)
}

func SetupRouter(svc *service.Service) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{conf.Conf.GetString("frontend.host")}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	h := handler.NewHandler(svc)
	api := r.Group("/v1")
	{
		api.POST("/systems/calculate", h.CalculateSystem)
		api.GET("/materials", h.ListMaterials)
		api.GET("/cases", h.ListCases)
		api.GET("/cases/:caseId", h.GetCase)
		api.GET("/cases/:caseId/report", h.GetCaseReport)
	}

	return r
}
