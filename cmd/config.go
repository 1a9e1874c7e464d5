package cmd

type Config struct {
	HTTPPort              string
	AddressServiceURL     string
	AddressServiceTimeout string
	KafkaHost             string
	KafkaOrderPlacedTopic string
}
