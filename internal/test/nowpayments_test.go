package test

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"

	"github.com/wa4lo7k/FlashFundXxx-sub000/internal"
)

var _ = Describe("NowPaymentsClient", func() {
	var (
		server *ghttp.Server
		client *internal.NowPaymentsClient
	)
	BeforeEach(func() {
		server = ghttp.NewServer()

		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		client = internal.NewNowPaymentsClient(server.URL(), "test-api-key", logger.Sugar())
	})
	AfterEach(func() {
		server.Close()
	})
	Context("CreateHostedInvoice", func() {
		It("creates a hosted invoice", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest("POST", "/v1/invoice"),
				ghttp.VerifyHeaderKV("x-api-key", "test-api-key"),
				ghttp.VerifyContentType("application/json"),
				ghttp.RespondWith(http.StatusOK,
					`{"id":"5077125051","invoice_url":"https://nowpayments.io/payment/?iid=5077125051","pay_amount":0.0123,"pay_currency":"btc"}`),
			))

			inv, err := client.CreateHostedInvoice(context.Background(), internal.InvoiceSpec{
				PriceCurrency: "usd",
				PayCurrency:   "btc",
				OrderID:       "FFX-1001",
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(inv.PaymentID).Should(Equal("5077125051"))
			Expect(inv.InvoiceURL).Should(Equal("https://nowpayments.io/payment/?iid=5077125051"))
			Expect(inv.PayAmount.String()).Should(Equal("0.0123"))
		})
		It("accepts a numeric payment id", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest("POST", "/v1/invoice"),
				ghttp.RespondWith(http.StatusOK, `{"id":5077125051,"invoice_url":"https://x"}`),
			))

			inv, err := client.CreateHostedInvoice(context.Background(), internal.InvoiceSpec{})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(inv.PaymentID).Should(Equal("5077125051"))
		})
		It("surfaces a non-2xx answer as ProcessorError", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest("POST", "/v1/invoice"),
				ghttp.RespondWith(http.StatusForbidden, `{"message":"Invalid api key"}`),
			))

			_, err := client.CreateHostedInvoice(context.Background(), internal.InvoiceSpec{})
			Expect(err).Should(HaveOccurred())

			var pErr *internal.ProcessorError
			Expect(errors.As(err, &pErr)).Should(BeTrue())
			Expect(pErr.StatusCode).Should(Equal(http.StatusForbidden))
			Expect(pErr.Body).Should(ContainSubstring("Invalid api key"))
		})
		It("rejects an invoice answer without a payment id", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest("POST", "/v1/invoice"),
				ghttp.RespondWith(http.StatusOK, `{"invoice_url":"https://x"}`),
			))

			_, err := client.CreateHostedInvoice(context.Background(), internal.InvoiceSpec{})
			Expect(err).Should(HaveOccurred())

			var pErr *internal.ProcessorError
			Expect(errors.As(err, &pErr)).Should(BeTrue())
		})
	})
	Context("GetPaymentStatus", func() {
		It("fetches the live status record", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest("GET", "/v1/payment/5077125051"),
				ghttp.VerifyHeaderKV("x-api-key", "test-api-key"),
				ghttp.RespondWith(http.StatusOK,
					`{"payment_id":5077125051,"payment_status":"confirming","pay_address":"bc1q000","pay_amount":0.0123,"actually_paid":0.005,"pay_currency":"btc"}`),
			))

			st, err := client.GetPaymentStatus(context.Background(), "5077125051")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(st.PaymentStatus).Should(Equal("confirming"))
			Expect(st.PayAddress).Should(Equal("bc1q000"))
			Expect(st.ActuallyPaid.String()).Should(Equal("0.005"))
		})
		It("surfaces a non-2xx answer as ProcessorError", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest("GET", "/v1/payment/404404"),
				ghttp.RespondWith(http.StatusNotFound, `{"message":"payment not found"}`),
			))

			_, err := client.GetPaymentStatus(context.Background(), "404404")
			Expect(err).Should(HaveOccurred())

			var pErr *internal.ProcessorError
			Expect(errors.As(err, &pErr)).Should(BeTrue())
			Expect(pErr.StatusCode).Should(Equal(http.StatusNotFound))
		})
	})
})
