package domain

import "image"

type CommandKind int

const (
	CommandInit CommandKind = iota
	CommandRaw
	CommandText
	CommandBitmap
	CommandLineWrap
	CommandCut
)

func (k CommandKind) String() string {
	switch k {
	case CommandInit:
		return "init"
	case CommandRaw:
		return "raw"
	case CommandText:
		return "text"
	case CommandBitmap:
		return "bitmap"
	case CommandLineWrap:
		return "line_wrap"
	case CommandCut:
		return "cut"
	default:
		return "unknown"
	}
}

// Alignment — выравнивание ESC a. Чек переключает его сырыми байтами через SendRAWData.
type Alignment int

const (
	AlignLeft   Alignment = 0
	AlignCenter Alignment = 1
)

// PrintCommand — одна команда, отправляемая на принтер.
// Заполнено только поле, соответствующее Kind.
type PrintCommand struct {
	Kind   CommandKind
	Text   string
	Raw    []byte
	Bitmap image.Image
	Lines  int
}

func InitCommand() PrintCommand {
	return PrintCommand{Kind: CommandInit}
}

func RawCommand(data []byte) PrintCommand {
	return PrintCommand{Kind: CommandRaw, Raw: data}
}

func TextCommand(text string) PrintCommand {
	return PrintCommand{Kind: CommandText, Text: text}
}

func BitmapCommand(img image.Image) PrintCommand {
	return PrintCommand{Kind: CommandBitmap, Bitmap: img}
}

func LineWrapCommand(n int) PrintCommand {
	return PrintCommand{Kind: CommandLineWrap, Lines: n}
}

func CutCommand() PrintCommand {
	return PrintCommand{Kind: CommandCut}
}
