package registry

import (
	"github.com/rufiscal/fdcodec/fdformat"
	"github.com/rufiscal/fdcodec/fdpad"
	"github.com/rufiscal/fdcodec/field"
)

// Field descriptors for the 1300s tag range, generated from the field
// catalogue; see DESIGN.md for the extraction and any Open Question fixups.
var (
	// (1300) КТ Н  Код товара, формат которого не идентифицирован
	KtN = field.Field[string]{Tag: 1300}
	// (1301) КТ EAN-8  Код товара в формате EAN-8
	KtEan8 = field.Field[string]{Tag: 1301}
	// (1302) КТ EAN-13  Код товара в формате EAN-13
	KtEan13 = field.Field[string]{Tag: 1302}
	// (1303) КТ ITF-14  Код товара в формате ITF-14
	KtItf14 = field.Field[string]{Tag: 1303}
	// (1304) КТ GS1.0  Код товара в формате GS1, нанесенный на товар, не подлежащий маркировке средствами идентификации
	KtGs1_0 = field.Field[string]{Tag: 1304}
	// (1305) КТ GS1.М  Код товара в формате GS1, нанесенный на товар, подлежащий маркировке средствами идентификации
	KtGs1M = field.Field[string]{Tag: 1305}
	// (1306) КТ КМК  Код товара в формате короткого кода маркировки, нанесенный на товар, подлежащий маркировке средствами идентификации
	KtKmk = field.Field[string]{Tag: 1306}
	// (1307) КТ МИ  Контрольно-идентификационный знак мехового изделия
	KtMi = field.Field[string]{Tag: 1307}
	// (1308) КТ ЕГАИС-2.0  Код товара в формате ЕГАИС-2.0
	KtEgais2_0 = field.Field[string]{Tag: 1308}
	// (1309) КТ ЕГАИС-3.0  Код товара в формате ЕГАИС-3.0
	KtEgais3_0 = field.Field[string]{Tag: 1309}
	// (1320) КТ Ф.1  Код товара в формате Ф.1
	KtF1 = field.Field[string]{Tag: 1320}
	// (1321) КТ Ф.2  Код товара в формате Ф.2
	KtF2 = field.Field[string]{Tag: 1321}
	// (1322) КТ Ф.3  Код товара в формате Ф.3
	KtF3 = field.Field[string]{Tag: 1322}
	// (1323) КТ Ф.4  Код товара в формате Ф.4
	KtF4 = field.Field[string]{Tag: 1323}
	// (1324) КТ Ф.5  Код товара в формате Ф.5
	KtF5 = field.Field[string]{Tag: 1324}
	// (1325) КТ Ф.6  Код товара в формате Ф.6
	KtF6 = field.Field[string]{Tag: 1325}
)

func init() {
	register([]Entry{
		{Tag: 1300, Kind: fdformat.KindString, Pad: fdpad.None(u32p(32)), JSONName: "undefined", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1300) КТ Н  Код товара, формат которого не идентифицирован"},
		{Tag: 1301, Kind: fdformat.KindString, Pad: fdpad.Fixed(8), JSONName: "ean8", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1301) КТ EAN-8  Код товара в формате EAN-8"},
		{Tag: 1302, Kind: fdformat.KindString, Pad: fdpad.Fixed(13), JSONName: "ean13", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1302) КТ EAN-13  Код товара в формате EAN-13"},
		{Tag: 1303, Kind: fdformat.KindString, Pad: fdpad.Fixed(14), JSONName: "itf14", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1303) КТ ITF-14  Код товара в формате ITF-14"},
		{Tag: 1304, Kind: fdformat.KindString, Pad: fdpad.None(u32p(38)), JSONName: "gs1", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1304) КТ GS1.0  Код товара в формате GS1, нанесенный на товар, не подлежащий маркировке средствами идентификации"},
		{Tag: 1305, Kind: fdformat.KindString, Pad: fdpad.None(u32p(38)), JSONName: "gs1m", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1305) КТ GS1.М  Код товара в формате GS1, нанесенный на товар, подлежащий маркировке средствами идентификации"},
		{Tag: 1306, Kind: fdformat.KindString, Pad: fdpad.None(u32p(38)), JSONName: "kmk", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1306) КТ КМК  Код товара в формате короткого кода маркировки, нанесенный на товар, подлежащий маркировке средствами идентификации"},
		{Tag: 1307, Kind: fdformat.KindString, Pad: fdpad.Fixed(20), JSONName: "mi", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1307) КТ МИ  Контрольно-идентификационный знак мехового изделия"},
		{Tag: 1308, Kind: fdformat.KindString, Pad: fdpad.Fixed(23), JSONName: "egais2", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1308) КТ ЕГАИС-2.0  Код товара в формате ЕГАИС-2.0"},
		{Tag: 1309, Kind: fdformat.KindString, Pad: fdpad.Fixed(14), JSONName: "egais3", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1309) КТ ЕГАИС-3.0  Код товара в формате ЕГАИС-3.0"},
		{Tag: 1320, Kind: fdformat.KindString, Pad: fdpad.None(u32p(32)), JSONName: "f1", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1320) КТ Ф.1  Код товара в формате Ф.1"},
		{Tag: 1321, Kind: fdformat.KindString, Pad: fdpad.None(u32p(32)), JSONName: "f2", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1321) КТ Ф.2  Код товара в формате Ф.2"},
		{Tag: 1322, Kind: fdformat.KindString, Pad: fdpad.None(u32p(32)), JSONName: "f3", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1322) КТ Ф.3  Код товара в формате Ф.3"},
		{Tag: 1323, Kind: fdformat.KindString, Pad: fdpad.None(u32p(32)), JSONName: "f4", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1323) КТ Ф.4  Код товара в формате Ф.4"},
		{Tag: 1324, Kind: fdformat.KindString, Pad: fdpad.None(u32p(32)), JSONName: "f5", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1324) КТ Ф.5  Код товара в формате Ф.5"},
		{Tag: 1325, Kind: fdformat.KindString, Pad: fdpad.None(u32p(32)), JSONName: "f6", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1325) КТ Ф.6  Код товара в формате Ф.6"},
	})
}
