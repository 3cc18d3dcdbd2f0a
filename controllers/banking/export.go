package bankingController

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/nashriel/secureBank/database"
	"github.com/nashriel/secureBank/middleware"
	ledgerService "github.com/nashriel/secureBank/services/ledger"

	"github.com/gofiber/fiber/v2"
)

// ExportTransactions downloads the caller's ledger. Only csv is supported;
// any other format is rejected without producing a file.
func ExportTransactions(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	format := c.Params("format")
	if format != "csv" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unsupported export format!", nil)
	}

	svc := ledgerService.New(database.Database.Db)
	entries, err := svc.History(userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch transactions!", nil)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"Txn ID", "Type", "Amount", "Date", "Remarks"})
	for _, txn := range entries {
		w.Write([]string{
			txn.TxnID,
			string(txn.TxnType),
			strconv.FormatFloat(txn.Amount, 'f', -1, 64),
			txn.CreatedAt.Format("2006-01-02 15:04:05"),
			txn.Remarks,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build export!", nil)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=transactions.csv`)
	return c.Send(buf.Bytes())
}
