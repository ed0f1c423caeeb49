package service

import (
	"github.com/MKhiriev/go-spine-client/internal/logger"
	"github.com/MKhiriev/go-spine-client/models"
)

// UserAgentProduct prefixes the User-Agent header.
const UserAgentProduct = "go-spine-client"

type appInfoService struct {
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewAppInfoService(buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if buildInfo.BuildVersion() == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

func (s *appInfoService) BuildInfo() models.AppBuildInfo {
	return s.buildInfo
}

func (s *appInfoService) UserAgent() string {
	return UserAgentProduct + "/" + s.buildInfo.BuildVersion()
}
