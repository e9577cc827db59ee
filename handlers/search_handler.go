package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/tanphat181203/Travel-BE-sub000/database"
	"github.com/tanphat181203/Travel-BE-sub000/opentelemetery"
	"github.com/tanphat181203/Travel-BE-sub000/services"
	"github.com/tanphat181203/Travel-BE-sub000/utils"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

func SearchTours(c *gin.Context) {
	traceContext, span := otel.Tracer(opentelemetery.ServiceName).Start(c, "tours-search")
	defer func() { span.End() }()

	pagination := utils.GetPagination(c)

	params := c.Request.URL.Query()
	params.Set("limit", strconv.Itoa(pagination.Limit))
	params.Set("offset", strconv.Itoa(pagination.Skip))

	span.AddEvent("Searching tours")
	result, err := services.SearchTours(traceContext, database.GORM_DB, params)
	if err != nil {
		if services.IsValidationError(err) {
			httpErrorBadRequest(err, span, c)
			return
		}
		httpErrorInternalServerError(err, span, c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tours":      result.Tours,
		"totalItems": result.TotalItems,
		"pagination": utils.BuildEnvelope(pagination, result.TotalItems),
	})
}

// Tracing error messages
func httpErrorBadRequest(err error, span trace.Span, c *gin.Context) {
	httpError(err, span, c, http.StatusBadRequest)
}

func httpErrorInternalServerError(err error, span trace.Span, c *gin.Context) {
	httpError(err, span, c, http.StatusInternalServerError)
}

func httpError(err error, span trace.Span, c *gin.Context, status int) {
	log.Println(err.Error())
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	c.JSON(status, gin.H{"error": err.Error()})
}
