package apiserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// HandleHealth is the handler for the route `/health`
func (srv *APIServer) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// HandleRuns is the handler for the route `/runs` which lists the
// recorded run reports in arrival order
func (srv *APIServer) HandleRuns(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"count": srv.ctx.Reports.Size(),
		"names": srv.ctx.Reports.Names(),
		"runs":  srv.ctx.Reports.All(),
	})
}

// HandleRun is the handler for the route `/runs/:name` which fetches the
// report of a property run by name, or by ID when the name is numeric
func (srv *APIServer) HandleRun(c *gin.Context) {
	name := c.Param("name")
	report, ok := srv.ctx.Reports.Get(name)
	if !ok {
		if id, err := strconv.Atoi(name); err == nil {
			report, ok = srv.ctx.Reports.ByID(id)
		}
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such run"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// HandleRunDelete is the handler for a DELETE on `/runs/:name` which
// drops the named report
func (srv *APIServer) HandleRunDelete(c *gin.Context) {
	if !srv.ctx.Reports.Remove(c.Param("name")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such run"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// HandleRunsDelete is the handler for a DELETE on `/runs` which drops
// every recorded report
func (srv *APIServer) HandleRunsDelete(c *gin.Context) {
	srv.ctx.Reports.Clear()
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
