package sale

import "math"

// CommissionRate é a fração do abono líquido que vira comissão do trabalhador
const CommissionRate = 0.10

// CommissionForDeposit calcula a comissão gerada por um abono. O abono é
// primeiro reduzido pelo percentual da forma de pagamento e sobre o restante
// aplica-se a taxa de comissão, arredondada para a unidade monetária.
//
// Abono zero gera comissão zero; forma de pagamento não resolvida deve ser
// tratada pelo chamador como percentual que zera a comissão (ver
// CommissionForUnresolvedPayment).
func CommissionForDeposit(depositAmount, paymentPercentage float64) float64 {
	if depositAmount == 0 {
		return 0
	}

	net := depositAmount * (1 - paymentPercentage/100)
	return math.Round(net * CommissionRate)
}

// CommissionForUnresolvedPayment é a comissão quando a forma de pagamento
// da venda não pôde ser resolvida
func CommissionForUnresolvedPayment() float64 {
	return 0
}
