package importer

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/qif/internal/model"
)

// OFXParser parses OFX/QFX statement downloads (bank and credit card).
type OFXParser struct{}

var (
	ofxSeverity   = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	ofxOpenTagEOL = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// Format returns the parser name.
func (p *OFXParser) Format() string { return "ofx" }

// Extensions returns the file extensions banks use for OFX downloads.
func (p *OFXParser) Extensions() []string { return []string{".ofx", ".qfx"} }

// Parse reads an OFX response and returns the transactions of every bank
// and credit card statement in it, in statement order.
func (p *OFXParser) Parse(r io.Reader) ([]model.BankTransaction, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading OFX: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(cleanOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("parsing OFX: %w", err)
	}

	var txns []model.BankTransaction
	for _, msg := range resp.Bank {
		stmt, ok := msg.(*ofxgo.StatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		converted, err := convertOFX(stmt.BankTranList.Transactions)
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", stmt.BankAcctFrom.AcctID, err)
		}
		txns = append(txns, converted...)
	}
	for _, msg := range resp.CreditCard {
		stmt, ok := msg.(*ofxgo.CCStatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		converted, err := convertOFX(stmt.BankTranList.Transactions)
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", stmt.CCAcctFrom.AcctID, err)
		}
		txns = append(txns, converted...)
	}
	return txns, nil
}

// cleanOFX repairs bank downloads that ofxgo would otherwise reject, such as
// mixed-case SEVERITY values or SGML tags missing their closing bracket.
func cleanOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = ofxSeverity.ReplaceAllStringFunc(content, strings.ToUpper)
	return ofxOpenTagEOL.ReplaceAllString(content, "$1>")
}

func convertOFX(list []ofxgo.Transaction) ([]model.BankTransaction, error) {
	txns := make([]model.BankTransaction, 0, len(list))
	for _, tx := range list {
		// Sub-cent digits are kept so conversion rejects them.
		amount, err := decimal.NewFromString(tx.TrnAmt.FloatString(4))
		if err != nil {
			return nil, fmt.Errorf("transaction %s: parsing amount: %w", tx.FiTID, err)
		}

		posted := tx.DtPosted.Time
		txns = append(txns, model.BankTransaction{
			Date:        time.Date(posted.Year(), posted.Month(), posted.Day(), 0, 0, 0, 0, time.UTC),
			Description: ofxDescription(tx),
			Amount:      amount,
			Type:        tx.TrnType.String(),
			CheckNumber: strings.TrimSpace(string(tx.CheckNum)),
			Memo:        strings.TrimSpace(string(tx.Memo)),
		})
	}
	return txns, nil
}

// ofxDescription prefers the structured payee name over NAME.
func ofxDescription(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return strings.TrimSpace(string(tx.Payee.Name))
	}
	return strings.TrimSpace(string(tx.Name))
}
