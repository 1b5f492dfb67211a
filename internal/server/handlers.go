package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yandex-Practicum/go-ftracker/internal/ftracker"
	"github.com/Yandex-Practicum/go-ftracker/internal/sensor"
)

// infoResponse is a training summary together with its rendered message.
type infoResponse struct {
	ftracker.InfoMessage
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

func (s *Server) training(c *gin.Context) {
	var pkg sensor.Package
	if err := c.ShouldBindJSON(&pkg); err != nil {
		s.badRequest(c, err)
		return
	}

	resp, err := summarize(pkg)
	if err != nil {
		s.badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) trainings(c *gin.Context) {
	var packages []sensor.Package
	if err := c.ShouldBindJSON(&packages); err != nil {
		s.badRequest(c, err)
		return
	}
	if len(packages) == 0 {
		s.badRequest(c, sensor.ErrNoPackages)
		return
	}

	resp := make([]infoResponse, 0, len(packages))
	for _, pkg := range packages {
		info, err := summarize(pkg)
		if err != nil {
			s.badRequest(c, err)
			return
		}
		resp = append(resp, info)
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) badRequest(c *gin.Context, err error) {
	entry := s.log.WithField("request_id", c.GetString(requestIDKey)).WithError(err)
	if errors.Is(err, ftracker.ErrUnknownTraining) {
		entry.Warn("unknown training type requested")
	} else {
		entry.Debug("bad request")
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func summarize(pkg sensor.Package) (infoResponse, error) {
	training, err := ftracker.ReadPackage(pkg.Type, pkg.Data)
	if err != nil {
		return infoResponse{}, err
	}
	info, err := ftracker.ShowTrainingInfo(training)
	if err != nil {
		return infoResponse{}, err
	}
	return infoResponse{InfoMessage: info, Message: info.Message()}, nil
}
