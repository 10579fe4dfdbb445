// Copyright 2015 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package core

import (
	"github.com/ethereum/go-ethereum/core/types"
)

// DefaultReceiptFactory builds a types.Receipt the way core.applyTransaction
// does upstream: status/type/cumulative-gas from the result, logs and bloom
// from the EVM's logs, and contract address for creation transactions. It
// is the reference ReceiptFactory;
// callers with bespoke receipt fields (e.g. an L2 carrying an extra field)
// supply their own function meeting the same signature.
func DefaultReceiptFactory(
	txType byte,
	result *TransactionProcessingResult,
	tx *types.Transaction,
	header *types.Header,
	cumulativeGas uint64,
) *types.Receipt {
	receipt := &types.Receipt{
		Type:              txType,
		CumulativeGasUsed: cumulativeGas,
		TxHash:            tx.Hash(),
		GasUsed:           tx.Gas() - result.GasRemaining,
		Logs:              result.Logs,
	}
	if result.Status == types.ReceiptStatusSuccessful {
		receipt.Status = types.ReceiptStatusSuccessful
	} else {
		receipt.Status = types.ReceiptStatusFailed
	}
	if result.ContractAddress != nil {
		receipt.ContractAddress = *result.ContractAddress
	}
	if receipt.Logs == nil {
		receipt.Logs = []*types.Log{}
	}
	receipt.Bloom = types.CreateBloom(types.Receipts{receipt})
	return receipt
}
