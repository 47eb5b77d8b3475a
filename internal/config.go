package internal

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
)

var c *config

const (
	RunAddress        = "RUN_ADDRESS"
	DatabaseURI       = "DATABASE_URI"
	NowPaymentsAPIURL = "NOWPAYMENTS_API_URL"
	NowPaymentsAPIKey = "NOWPAYMENTS_API_KEY"
	IPNCallbackURL    = "NOWPAYMENTS_IPN_CALLBACK_URL"
	IPNSecret         = "NOWPAYMENTS_IPN_SECRET"
	SuccessURL        = "PAYMENT_SUCCESS_URL"
	CancelURL         = "PAYMENT_CANCEL_URL"
	JWTSecret         = "JWT_SECRET"
)

const (
	defaultRunAddress        = "localhost:8080"
	defaultNowPaymentsAPIURL = "https://api.nowpayments.io"
)

type config struct {
	RunAddress        string
	DatabaseURI       string
	NowPaymentsAPIURL string
	NowPaymentsAPIKey string
	IPNCallbackURL    string
	IPNSecret         string
	SuccessURL        string
	CancelURL         string
	JWTSecret         string
}

func NewConfig() *config {
	godotenv.Load()

	c = new(config)

	flag.StringVar(&c.RunAddress, "a", setEnvOrDefault(RunAddress, defaultRunAddress), "host to listen on")
	flag.StringVar(&c.DatabaseURI, "d", setEnvOrDefault(DatabaseURI, ""), "postgres connection string")
	flag.StringVar(&c.NowPaymentsAPIURL, "p", setEnvOrDefault(NowPaymentsAPIURL, defaultNowPaymentsAPIURL), "NowPayments API base url")

	c.NowPaymentsAPIKey = setEnvOrDefault(NowPaymentsAPIKey, "")
	c.IPNCallbackURL = setEnvOrDefault(IPNCallbackURL, "")
	c.IPNSecret = setEnvOrDefault(IPNSecret, "")
	c.SuccessURL = setEnvOrDefault(SuccessURL, "")
	c.CancelURL = setEnvOrDefault(CancelURL, "")
	c.JWTSecret = setEnvOrDefault(JWTSecret, "")

	flag.Parse()
	return c
}

func setEnvOrDefault(env, def string) string {
	res, e := os.LookupEnv(env)
	if !e {
		res = def
	}
	return res
}
