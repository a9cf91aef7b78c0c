package observability

import (
	"strings"

	"github.com/cbta228/app-preinscripcion/internal/logging"
	"go.uber.org/zap"
)

// Logger returns the global logger instance
func Logger() *zap.Logger {
	return logging.Logger
}

// MaskCURP masks a CURP for logging, keeping the leading name block and the
// trailing digit so records remain distinguishable in logs
func MaskCURP(curp string) string {
	curp = strings.TrimSpace(curp)
	if len(curp) != 18 {
		return "****"
	}
	return curp[:4] + "**********" + curp[14:]
}

// MaskCorreo masks the local part of an email address for logging
func MaskCorreo(correo string) string {
	at := strings.LastIndex(correo, "@")
	if at <= 0 {
		return "****"
	}
	return correo[:1] + "***@" + correo[at+1:]
}
