package main

import (
	"flag"
	"os"
	"time"
)

var flagRunAddr string
var flagLogLevel string
var flagInquiryEndpoint string
var flagCardImageURL string
var flagInquiryTimeout time.Duration

func parseFlags() {
	flag.StringVar(&flagRunAddr, "a", ":8080", "address and port")
	flag.StringVar(&flagLogLevel, "l", "debug", "log level")
	flag.StringVar(&flagInquiryEndpoint, "e", "https://askdevoxx.cfapps.io/inquiry", "inquiry service endpoint")
	flag.StringVar(&flagCardImageURL, "i", "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcS2EJZCArvYTVTThseT3TdN25cmPRanxrM2RDAgOI1GT0GEQLMVLA", "card image URL")
	flag.DurationVar(&flagInquiryTimeout, "t", 10*time.Second, "inquiry request timeout")
	flag.Parse()

	if envRunAddr := os.Getenv("RUN_ADDR"); envRunAddr != "" {
		flagRunAddr = envRunAddr
	}

	if envLogLevel := os.Getenv("LOG_LEVEL"); envLogLevel != "" {
		flagLogLevel = envLogLevel
	}

	if envInquiryEndpoint := os.Getenv("INQUIRY_ENDPOINT"); envInquiryEndpoint != "" {
		flagInquiryEndpoint = envInquiryEndpoint
	}

	if envCardImageURL := os.Getenv("CARD_IMAGE_URL"); envCardImageURL != "" {
		flagCardImageURL = envCardImageURL
	}

	if envInquiryTimeout := os.Getenv("INQUIRY_TIMEOUT"); envInquiryTimeout != "" {
		if timeout, err := time.ParseDuration(envInquiryTimeout); err == nil {
			flagInquiryTimeout = timeout
		}
	}
}
