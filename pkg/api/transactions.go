package api

import (
	"fmt"

	json "github.com/json-iterator/go"
	"github.com/neofinance/neofin/pkg/client"
	"github.com/neofinance/neofin/pkg/logger"
)

// GetTransactions fetches the caller's full transaction list
func GetTransactions() ([]Transaction, error) {
	logger.Debug("Fetching transactions")

	resp, err := client.GetClient().
		R().
		Get("/finance/transactions/")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var transactions []Transaction
	if err := json.Unmarshal(resp.Body(), &transactions); err != nil {
		return nil, err
	}

	logger.Debug("Transactions fetched", "count", len(transactions))
	return transactions, nil
}

// CreateTransaction records a new transaction
func CreateTransaction(req *TransactionRequest) (*Transaction, error) {
	logger.Debug("Creating transaction", "type", req.Type, "category", req.Category)

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post("/finance/transactions/")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var created Transaction
	if err := json.Unmarshal(resp.Body(), &created); err != nil {
		return nil, err
	}

	logger.Debug("Transaction created", "id", created.ID)
	return &created, nil
}

// UpdateTransaction updates an existing transaction
func UpdateTransaction(id string, req *TransactionRequest) (*Transaction, error) {
	logger.Debug("Updating transaction", "id", id)

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Put(fmt.Sprintf("/finance/transactions/%s/update/", id))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var updated Transaction
	if err := json.Unmarshal(resp.Body(), &updated); err != nil {
		return nil, err
	}

	logger.Debug("Transaction updated", "id", updated.ID)
	return &updated, nil
}

// DeleteTransaction removes a transaction
func DeleteTransaction(id string) error {
	logger.Debug("Deleting transaction", "id", id)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/finance/transactions/%s/", id))

	return CheckResponse(resp, err)
}
