package opts

import (
	"github.com/walteh/fileman/pkg/log"
	"github.com/walteh/fileman/pkg/status"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile string
	StatusMgr  *status.Manager
	UserLogger *log.Logger
}
