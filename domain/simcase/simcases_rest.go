package simcase

import (
	"avda/bizerror"
	"avda/domain"
	"avda/session"
	"errors"
	"net/http"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var (
	PathCases          = "/v1/simulation-cases"
	PathCaseDeletions  = "/v1/simulation-case-deletions"
	PathCaseExistence  = "/v1/simulation-case-existence"
	PathCaseEnums      = "/v1/simulation-case-enums"
	PathCaseStatistics = "/v1/simulation-case-statistics"
)

type ExistenceBody struct {
	Exists bool `json:"exists"`
}

type BatchDeletionBody struct {
	DeletedCount int `json:"deletedCount"`
}

type CaseEnumsBody struct {
	SimulationTypes    []domain.EnumItem `json:"simulationTypes"`
	SimulationStatuses []domain.EnumItem `json:"simulationStatuses"`
}

func RegisterSimulationCasesRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group(PathCases, middleWares...)
	g.GET("", handleQueryCases)
	g.POST("", handleCreateCase)
	g.GET(":id", handleDetailCase)
	g.PUT(":id", handleUpdateCase)
	g.DELETE(":id", handleDeleteCase)
	g.PUT(":id/status", handleUpdateCaseStatus)

	d := r.Group(PathCaseDeletions, middleWares...)
	d.POST("", handleCreateCaseDeletions)

	e := r.Group(PathCaseExistence, middleWares...)
	e.GET("", handleCaseExistence)

	n := r.Group(PathCaseEnums, middleWares...)
	n.GET("", handleCaseEnums)

	s := r.Group(PathCaseStatistics, middleWares...)
	s.GET("status-counts", handleStatusCounts)
	s.GET("type-distribution", handleTypeDistribution)
}

func parseCaseId(c *gin.Context) types.ID {
	parsedId, err := types.ParseID(c.Param("id"))
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: errors.New("invalid id '" + c.Param("id") + "'")})
	}
	return parsedId
}

func handleQueryCases(c *gin.Context) {
	query := domain.CasePagedRequest{}
	err := c.MustBindWith(&query, binding.Query)
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	page, err := QueryCasesFunc(&query, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, page)
}

func handleCreateCase(c *gin.Context) {
	creation := domain.CaseCreation{}
	err := c.ShouldBindBodyWith(&creation, binding.JSON)
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	detail, err := CreateCaseFunc(&creation, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusCreated, detail)
}

func handleDetailCase(c *gin.Context) {
	detail, err := DetailCaseFunc(parseCaseId(c), session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, detail)
}

func handleUpdateCase(c *gin.Context) {
	parsedId := parseCaseId(c)

	updating := domain.CaseUpdating{}
	err := c.ShouldBindBodyWith(&updating, binding.JSON)
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	found, err := UpdateCaseFunc(parsedId, &updating, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	if !found {
		panic(bizerror.ErrNotFound)
	}
	c.AbortWithStatus(http.StatusOK)
}

func handleDeleteCase(c *gin.Context) {
	found, err := DeleteCaseFunc(parseCaseId(c), session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	if !found {
		panic(bizerror.ErrNotFound)
	}
	c.AbortWithStatus(http.StatusNoContent)
}

func handleUpdateCaseStatus(c *gin.Context) {
	parsedId := parseCaseId(c)

	updating := domain.CaseStatusUpdating{}
	err := c.ShouldBindBodyWith(&updating, binding.JSON)
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	found, err := UpdateCaseStatusFunc(parsedId, *updating.Status, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	if !found {
		panic(bizerror.ErrNotFound)
	}
	c.AbortWithStatus(http.StatusNoContent)
}

func handleCreateCaseDeletions(c *gin.Context) {
	selection := domain.CaseSelection{}
	if err := c.ShouldBindBodyWith(&selection, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	deleted, err := BatchDeleteCasesFunc(selection.CaseIdList, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, &BatchDeletionBody{DeletedCount: deleted})
}

func handleCaseExistence(c *gin.Context) {
	query := domain.CaseExistenceQuery{}
	err := c.MustBindWith(&query, binding.Query)
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	exists, err := CaseExistsFunc(query.Name, query.ExcludeId, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, &ExistenceBody{Exists: exists})
}

func handleCaseEnums(c *gin.Context) {
	c.JSON(http.StatusOK, &CaseEnumsBody{
		SimulationTypes:    domain.SimulationTypeItems(),
		SimulationStatuses: domain.SimulationStatusItems(),
	})
}

func handleStatusCounts(c *gin.Context) {
	sec := session.ExtractSessionFromGinContext(c)
	createdBy := c.Query("createdBy")
	if createdBy == "" {
		createdBy = sec.Identity.Name
	}

	counts, err := StatusCountsByUserFunc(createdBy, sec)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, counts)
}

func handleTypeDistribution(c *gin.Context) {
	distribution, err := TypeDistributionFunc(session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, distribution)
}
