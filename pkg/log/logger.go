package log

import (
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const projectName = "Skyline"

var (
	L     *zap.Logger
	level = zap.NewAtomicLevelAt(zap.InfoLevel)
)

func init() {
	L = newLogger(zapcore.AddSync(os.Stdout))
}

func newLogger(out zapcore.WriteSyncer) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeCaller = trimCaller
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), out, level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
}

// trimCaller 调用位置从项目目录开始打印
func trimCaller(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
	if i := strings.Index(caller.File, projectName); i != -1 {
		enc.AppendString(caller.File[i:] + ":" + strconv.Itoa(caller.Line))
		return
	}
	enc.AppendString(caller.TrimmedPath())
}

// SetDebug 调试模式下输出 debug 日志
func SetDebug(debug bool) {
	if debug {
		level.SetLevel(zap.DebugLevel)
		return
	}
	level.SetLevel(zap.InfoLevel)
}
