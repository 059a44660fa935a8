package main

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/precond/pkg/config"
	"github.com/dmitrymomot/precond/pkg/errkind"
	"github.com/dmitrymomot/precond/pkg/httpserver"
	"github.com/dmitrymomot/precond/pkg/logger"
	"github.com/dmitrymomot/precond/pkg/mqttfile"
	"github.com/dmitrymomot/precond/pkg/validator"
)

const disconnectQuiesceMs = 250

type mqttFlags struct {
	broker   string
	topic    string
	clientID string
	qos      int
}

func (f mqttFlags) apply(cmd *cobra.Command, cfg *mqttfile.Config) error {
	fl := cmd.Flags()
	if fl.Changed("broker") {
		cfg.BrokerURL = f.broker
	}
	if fl.Changed("topic") {
		cfg.Topic = f.topic
	}
	if fl.Changed("client-id") {
		cfg.ClientID = f.clientID
	}
	if fl.Changed("qos") {
		if err := validator.InRange(f.qos, 0, 2, true, true, "--qos", errkind.Argument); err != nil {
			return err
		}
		cfg.QoS = byte(f.qos)
	}
	return nil
}

func mqttCmd(a *app) *cobra.Command {
	var flags mqttFlags

	cmd := &cobra.Command{
		Use:   "mqtt",
		Short: "Relay files over MQTT",
	}
	cmd.PersistentFlags().StringVar(&flags.broker, "broker", "", "broker url, overrides MQTT_BROKER_URL")
	cmd.PersistentFlags().StringVar(&flags.topic, "topic", "", "topic, overrides MQTT_TOPIC")
	cmd.PersistentFlags().StringVar(&flags.clientID, "client-id", "", "client id, overrides MQTT_CLIENT_ID")
	cmd.PersistentFlags().IntVar(&flags.qos, "qos", 1, "quality of service (0, 1, 2), overrides MQTT_QOS")

	cmd.AddCommand(
		mqttPublishCmd(a, &flags),
		mqttSubscribeCmd(a, &flags),
	)
	return cmd
}

func loadMQTTConfig(cmd *cobra.Command, flags *mqttFlags) (mqttfile.Config, error) {
	var cfg mqttfile.Config
	if err := config.Load(&cfg); err != nil {
		return cfg, fmt.Errorf("load mqtt config: %w", err)
	}
	if err := flags.apply(cmd, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func mqttPublishCmd(a *app, flags *mqttFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "publish <file>",
		Short: "Publish a file's contents to the topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadMQTTConfig(cmd, flags)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			client, err := mqttfile.Connect(ctx, cfg, a.log)
			if err != nil {
				return err
			}
			defer client.Disconnect(disconnectQuiesceMs)

			pub := mqttfile.NewPublisher(client, cfg, mqttfile.WithPublisherLogger(a.log))
			if err := pub.PublishFile(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s published to %s\n", args[0], cfg.Topic)
			return nil
		},
	}
}

func mqttSubscribeCmd(a *app, flags *mqttFlags) *cobra.Command {
	var (
		out         string
		once        bool
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "subscribe",
		Short: "Write every payload received on the topic to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadMQTTConfig(cmd, flags)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("out") {
				cfg.ReceivePath = out
			}

			var httpCfg httpserver.Config
			if err := config.Load(&httpCfg); err != nil {
				return fmt.Errorf("load metrics config: %w", err)
			}
			if cmd.Flags().Changed("metrics-addr") {
				httpCfg.Addr = metricsAddr
			}

			reg := prometheus.NewRegistry()
			metrics, err := mqttfile.NewMetrics(reg)
			if err != nil {
				return err
			}

			var srv *httpserver.Server
			if httpCfg.Enabled() {
				srv = httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(a.log))
				if err := srv.Listen(); err != nil {
					return err
				}
				defer srv.Shutdown(context.Background())
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			g, ctx := errgroup.WithContext(ctx)

			var subscribed atomic.Bool
			if srv != nil {
				router := httpserver.Router(reg, a.log, func(context.Context) error {
					if !subscribed.Load() {
						return errNotSubscribed
					}
					return nil
				})
				g.Go(func() error { return srv.Run(ctx, router) })
			}

			client, err := mqttfile.Connect(ctx, cfg, a.log)
			if err != nil {
				cancel()
				if werr := g.Wait(); werr != nil {
					return werr
				}
				return err
			}
			defer client.Disconnect(disconnectQuiesceMs)

			w := cmd.OutOrStdout()
			recv := mqttfile.NewReceiver(client, cfg,
				mqttfile.WithReceiverLogger(a.log),
				mqttfile.WithReceiverMetrics(metrics),
				mqttfile.WithNotify(func(d mqttfile.Delivery) {
					if d.Err != nil {
						a.log.ErrorContext(ctx, "payload not written", logger.Topic(d.Topic), logger.Error(d.Err))
						return
					}
					fmt.Fprintf(w, "received %d bytes on %s, written to %s\n", d.Bytes, d.Topic, d.Path)
					if once {
						cancel()
					}
				}),
			)
			if err := recv.Start(ctx); err != nil {
				cancel()
				_ = g.Wait()
				return err
			}
			subscribed.Store(true)

			g.Go(func() error {
				<-ctx.Done()
				subscribed.Store(false)
				stopCtx, stopCancel := context.WithTimeout(context.Background(), cfg.OperationTimeout)
				defer stopCancel()
				return recv.Stop(stopCtx)
			})
			return g.Wait()
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "file payloads are written to, overrides MQTT_RECEIVE_PATH")
	cmd.Flags().BoolVar(&once, "once", false, "exit after the first payload")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve /metrics, /livez and /readyz on this address, overrides METRICS_ADDR")
	return cmd
}

var errNotSubscribed = errors.New("receiver not subscribed")
