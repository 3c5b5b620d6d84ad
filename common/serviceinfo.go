package common

import "os"

const defaultServiceName = "avda"

var serviceInstance string

func GetServiceName() string {
	if name := os.Getenv("SERVICE_NAME"); name != "" {
		return name
	}
	return defaultServiceName
}

func GetServiceInstance() string {
	if serviceInstance == "" {
		hostname, err := os.Hostname()
		if err != nil {
			hostname = "unknown-host"
		}
		serviceInstance = hostname
	}
	return serviceInstance
}
