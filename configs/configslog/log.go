package configslog

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log yapılandırılmış alanlarla kullanılan ana logger'dır.
// InitLogger çağrılana kadar no-op logger olarak kalır.
var Log = zap.NewNop()

// SLog printf tarzı mesajlar için sugared logger'dır.
var SLog = Log.Sugar()

// InitLogger ortam ve seviyeye göre global logger'ları kurar.
// env "production" ise JSON çıktı, aksi halde renkli konsol çıktısı üretilir.
func InitLogger(level string, env string) {
	var cfg zap.Config
	if strings.EqualFold(env, "production") {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))

	logger, err := cfg.Build(zap.AddCaller())
	if err != nil {
		// Logger kurulamazsa uygulama sessiz kalmasın
		logger = zap.NewExample()
		logger.Warn("Logger configuration failed, falling back to example logger", zap.Error(err))
	}

	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger tamponlanmış log kayıtlarını boşaltır.
func SyncLogger() {
	_ = Log.Sync()
}

func parseLevel(level string) zapcore.Level {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}
