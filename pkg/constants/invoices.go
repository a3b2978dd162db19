package constants

// InvoiceVATPercent - ставка НДС для расчета сумм по позициям счета.
const InvoiceVATPercent = 19
