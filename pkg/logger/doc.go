// Package logger builds *slog.Logger instances with functional options and
// provides attribute helpers shared across the module.
//
// New picks a text or JSON handler, applies the level and static attributes,
// and wraps the handler with LogHandlerDecorator so registered
// ContextExtractor callbacks add request-scoped attributes on every record.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "precond"),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//	log.DebugContext(ctx, "entering", logger.Signature("dice.Simulate"))
//
// # Configuration
//
//   - WithDevelopment / WithStaging / WithProduction / WithEnvironment: per-environment defaults.
//   - WithFormat / WithTextFormatter / WithJSONFormatter: output format.
//   - WithLevel: minimum level. ParseLevel and ParseFormat convert config strings.
//   - WithAttr: static attributes.
//   - WithContextExtractors / WithContextValue: attributes pulled from context.
//
// # Attributes
//
// Signature, Phase and Duration describe traced calls (see pkg/tracelog);
// Topic, Path and Bytes describe file relay traffic; Group nests related
// attributes under one key. Error returns an empty attribute for a nil
// error, so
//
//	log.Info("published", logger.Error(err))
//
// needs no nil check.
package logger
