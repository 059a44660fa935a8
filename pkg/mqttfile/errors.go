package mqttfile

import "errors"

var (
	// ErrConnect is returned when the broker connection cannot be established.
	ErrConnect = errors.New("failed to connect to mqtt broker")

	// ErrTimeout is returned when the broker does not acknowledge in time.
	ErrTimeout = errors.New("mqtt operation timed out")

	// ErrPublish is returned when a payload cannot be published.
	ErrPublish = errors.New("failed to publish payload")

	// ErrSubscribe is returned when a subscription cannot be made or removed.
	ErrSubscribe = errors.New("failed to subscribe")

	// ErrAlreadySubscribed is returned by Receiver.Start when it is running.
	ErrAlreadySubscribed = errors.New("receiver already subscribed")
)
