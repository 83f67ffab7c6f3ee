package handlers

import "log"

// EventPublisher is satisfied by *rabbitmq.Publisher. A nil publisher
// disables messaging.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

// publish never fails the request; broker errors are only logged.
func publish(p EventPublisher, routingKey string, payload any) {
	if p == nil {
		return
	}
	if err := p.Publish(routingKey, payload); err != nil {
		log.Printf("publish %s: %v", routingKey, err)
	}
}
