package registry

import (
	"github.com/rufiscal/fdcodec/fdformat"
	"github.com/rufiscal/fdcodec/fdpad"
	"github.com/rufiscal/fdcodec/field"
)

// Field descriptors for the 2000s tag range, generated from the field
// catalogue; see DESIGN.md for the extraction and any Open Question fixups.
var (
	// (2000) Код маркировки  Код маркировки товара, подлежащего обязательной маркировке средством идентификации
	MarkingCode = field.Field[string]{Tag: 2000}
	// (2001) Номер запроса  Порядковый номер запроса о коде маркировки
	RequestNumber = field.Field[uint64]{Tag: 2001}
	// (2002) Номер уведомления  Порядковый номер уведомления о реализации товара, подлежащего обязательной маркировке средством идентификации
	NotificationNumber = field.Field[uint64]{Tag: 2002}
	// (2003) Планируемый статус товара  Планируемое изменение статуса товара, подлежащего обязательной маркировке средством идентификации (реализация, возврат)
	PlannedProductStatus = field.Field[uint64]{Tag: 2003}
	// (2004) Результат проверки КМ  Результат проверки КП КМ
	KmCheckResult = field.Field[uint64]{Tag: 2004}
	// (2005) Результаты обработки запроса  Результаты обработки запроса о коде маркировки ОИСМ
	RequestProcessingResults = field.Field[uint64]{Tag: 2005}
	// (2006) Результаты обработки уведомления  Признак наличия в уведомлении о реализации маркированных товаров КМ, проверка которых дала отрицательный результат
	NotificationProcessingResults = field.Field[uint64]{Tag: 2006}
	// (2007) Данные о маркированном товаре  Данные о товаре, подлежащем обязательной маркировке средством идентификации
	MarkedProductData = field.Field[[]byte]{Tag: 2007}
)

func init() {
	register([]Entry{
		{Tag: 2000, Kind: fdformat.KindString, Pad: fdpad.None(u32p(256)), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(2000) Код маркировки  Код маркировки товара, подлежащего обязательной маркировке средством идентификации"},
		{Tag: 2001, Kind: fdformat.KindU32, Pad: fdpad.Right(4, 0x00), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(2001) Номер запроса  Порядковый номер запроса о коде маркировки"},
		{Tag: 2002, Kind: fdformat.KindU32, Pad: fdpad.Right(4, 0x00), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(2002) Номер уведомления  Порядковый номер уведомления о реализации товара, подлежащего обязательной маркировке средством идентификации"},
		{Tag: 2003, Kind: fdformat.KindEnum, Pad: fdpad.Right(1, 0x00), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(2003) Планируемый статус товара  Планируемое изменение статуса товара, подлежащего обязательной маркировке средством идентификации (реализация, возврат)"},
		{Tag: 2004, Kind: fdformat.KindEnum, Pad: fdpad.Right(1, 0x00), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(2004) Результат проверки КМ  Результат проверки КП КМ"},
		{Tag: 2005, Kind: fdformat.KindEnum, Pad: fdpad.Right(1, 0x00), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(2005) Результаты обработки запроса  Результаты обработки запроса о коде маркировки ОИСМ"},
		{Tag: 2006, Kind: fdformat.KindEnum, Pad: fdpad.Right(1, 0x00), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(2006) Результаты обработки уведомления  Признак наличия в уведомлении о реализации маркированных товаров КМ, проверка которых дала отрицательный результат"},
		{Tag: 2007, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(512)), JSONName: "", Aliases: nil, Multi: true, Deprecated: false, Doc: "(2007) Данные о маркированном товаре  Данные о товаре, подлежащем обязательной маркировке средством идентификации"},
	})
}
