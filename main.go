package main

import (
	"avda/bizerror"
	"avda/common"
	"avda/domain/casestore"
	"avda/domain/simcase"
	"avda/infra/tracing"
	"avda/persistence"
	"avda/session"
	"avda/sessions"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.Infoln("service start")

	dbConfig, err := persistence.ParseDatabaseConfigFromEnv()
	if err != nil {
		logrus.Fatalf("parse database config failed %v", err)
	}

	// create database (no conflict)
	if dbConfig.DriverType == "mysql" {
		if err := persistence.PrepareMysqlDatabase(dbConfig.DriverArgs); err != nil {
			logrus.Fatalf("failed to prepare database %v", err)
		}
	}

	// connect database
	ds := &persistence.DataSourceManager{DatabaseConfig: dbConfig}
	if err := ds.Start(); err != nil {
		logrus.Fatalf("database connection failed %v", err)
	}
	defer ds.Stop()
	persistence.ActiveDataSourceManager = ds

	// database migration (race condition)
	if err := casestore.Migrate(ds.GormDB(context.Background())); err != nil {
		logrus.Fatalf("database migration failed %v", err)
	}

	tracerCloser, err := tracing.InitJaegerTracer(common.GetServiceName())
	if err != nil {
		logrus.Warnf("tracer initialization failed %v", err)
	} else {
		defer tracerCloser.Close()
	}

	engine := gin.Default()
	engine.Use(tracing.TracingIngress(), bizerror.ErrorHandling())
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, common.GetServiceName())
	})

	sessions.RegisterSessionsHandler(engine)
	simcase.RegisterSimulationCasesRestAPI(engine, session.SimpleAuthFilter())

	err = engine.Run(":80")
	if err != nil {
		panic(err)
	}
}
