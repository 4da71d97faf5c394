package registry

import (
	"github.com/rufiscal/fdcodec/fdformat"
	"github.com/rufiscal/fdcodec/fdpad"
	"github.com/rufiscal/fdcodec/field"
)

// Field descriptors for the documents tag range, generated from the field
// catalogue; see DESIGN.md for the extraction and any Open Question fixups.
var (
	// (1) Отчет о регистрации
	RegistrationReport = field.Field[[]byte]{Tag: 1}
	// (2) Отчет об открытии смены
	ShiftStartReport = field.Field[[]byte]{Tag: 2}
	// (3) Кассовый чек
	Receipt = field.Field[[]byte]{Tag: 3}
	// (4) Бланк строгой отчетности
	Bso = field.Field[[]byte]{Tag: 4}
	// (5) Отчет о закрытии смены
	ShiftEndReport = field.Field[[]byte]{Tag: 5}
	// (6) Отчет о закрытии фискального накопителя
	FnCloseReport = field.Field[[]byte]{Tag: 6}
	// (7) Подтверждение оператора
	OperatorConfirmation = field.Field[[]byte]{Tag: 7}
	// (11) Отчет об изменении параметров регистрации
	RegistrationParamUpdateReport = field.Field[[]byte]{Tag: 11}
	// (21) Отчет о текущем состоянии расчетов
	PaymentStateReport = field.Field[[]byte]{Tag: 21}
	// (31) Кассовый чек коррекции
	CorrectionReceipt = field.Field[[]byte]{Tag: 31}
	// (41) Бланк строгой отчетности коррекции
	CorrectionBso = field.Field[[]byte]{Tag: 41}
	// (81) Запрос о коде маркировки
	MarkingCodeRequest = field.Field[[]byte]{Tag: 81}
	// (82) Уведомление о реализации маркированного товара
	MarkedProductSaleNotification = field.Field[[]byte]{Tag: 82}
	// (83) Ответ на запрос
	MarkingResponse = field.Field[[]byte]{Tag: 83}
	// (84) Квитанция на уведомление
	NotificationReceipt = field.Field[[]byte]{Tag: 84}
)

func init() {
	register([]Entry{
		{Tag: 1, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(6144)), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1) Отчет о регистрации"},
		{Tag: 2, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(4096)), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(2) Отчет об открытии смены"},
		{Tag: 3, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(32768)), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(3) Кассовый чек"},
		{Tag: 4, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(32768)), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(4) Бланк строгой отчетности"},
		{Tag: 5, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(4096)), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(5) Отчет о закрытии смены"},
		{Tag: 6, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(4096)), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(6) Отчет о закрытии фискального накопителя"},
		{Tag: 7, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(512)), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(7) Подтверждение оператора"},
		{Tag: 11, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(6144)), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(11) Отчет об изменении параметров регистрации"},
		{Tag: 21, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(32768)), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(21) Отчет о текущем состоянии расчетов"},
		{Tag: 31, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(32768)), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(31) Кассовый чек коррекции"},
		{Tag: 41, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(32768)), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(41) Бланк строгой отчетности коррекции"},
		{Tag: 81, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(4096)), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(81) Запрос о коде маркировки"},
		{Tag: 82, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(32768)), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(82) Уведомление о реализации маркированного товара"},
		{Tag: 83, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(512)), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(83) Ответ на запрос"},
		{Tag: 84, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(512)), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(84) Квитанция на уведомление"},
	})
}
