package logger

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/synzk/hub-backend/internal/types/environments"
)

var _ = Describe("Logger", func() {
	Describe("#New", func() {
		It("should create a logger for every known environment", func() {
			for _, env := range []environments.Environment{
				environments.Production,
				environments.Staging,
				environments.Development,
				environments.Test,
			} {
				logger := New(env)
				Expect(logger).NotTo(BeNil())
				Expect(logger.wrappedLogger).NotTo(BeNil())
			}
		})

		It("should fall back to production config for unknown environments", func() {
			logger := New(environments.Environment("unknown"))
			Expect(logger).NotTo(BeNil())

			core := logger.wrappedLogger.Core()
			Expect(core.Enabled(zapcore.InfoLevel)).To(BeTrue())
			Expect(core.Enabled(zapcore.DebugLevel)).To(BeFalse())
		})
	})

	Describe("environment configs", func() {
		It("should use json to stdout in production", func() {
			cfg := newProductionLoggerConfig()

			Expect(cfg.Level.Level()).To(Equal(zap.InfoLevel))
			Expect(cfg.Encoding).To(Equal("json"))
			Expect(cfg.OutputPaths).To(Equal([]string{"stdout"}))
			Expect(cfg.ErrorOutputPaths).To(Equal([]string{"stderr"}))
		})

		It("should disable caller and stacktrace in staging", func() {
			cfg := newStagingLoggerConfig()

			Expect(cfg.Level.Level()).To(Equal(zap.InfoLevel))
			Expect(cfg.DisableCaller).To(BeTrue())
			Expect(cfg.DisableStacktrace).To(BeTrue())
			Expect(cfg.Encoding).To(Equal("json"))
		})

		It("should use console debug logging in development", func() {
			cfg := newDevelopmentLoggerConfig()

			Expect(cfg.Level.Level()).To(Equal(zap.DebugLevel))
			Expect(cfg.Development).To(BeTrue())
			Expect(cfg.Encoding).To(Equal("console"))
		})

		It("should discard output in test", func() {
			cfg := newTestLoggerConfig()

			Expect(cfg.OutputPaths).To(BeEmpty())
			Expect(cfg.ErrorOutputPaths).To(BeEmpty())
		})
	})
})
