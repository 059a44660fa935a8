// Package mqttfile relays file contents over MQTT.
//
// A Publisher reads a file and publishes its bytes to a topic; a Receiver
// subscribes to a topic and writes every payload it gets to a file,
// replacing the previous contents. Both work on the narrow Client interface,
// which a paho mqtt.Client satisfies:
//
//	var cfg mqttfile.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//	client, err := mqttfile.Connect(ctx, cfg, log)
//	if err != nil {
//	    return err
//	}
//	defer client.Disconnect(250)
//
//	pub := mqttfile.NewPublisher(client, cfg, mqttfile.WithPublisherLogger(log))
//	if err := pub.PublishFile(ctx, "./send.txt"); err != nil {
//	    return err
//	}
//
// Defaults follow a persistent-session setup: QoS 1, retained messages,
// clean session off, 10s connect timeout and 20s keepalive.
//
// Metrics are optional. NewMetrics registers the relay counters on the given
// prometheus.Registerer and the result is passed with WithPublisherMetrics or
// WithReceiverMetrics.
package mqttfile
