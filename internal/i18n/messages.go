package i18n

// Message keys. Each key is the English text and doubles as a format string
// for message.Printer. Integers are passed pre-formatted through %s so they
// print without locale digit grouping.
const (
	Banner  = "=== Inventory System ==="
	Welcome = "Welcome to the inventory system!"
	Goodbye = "Thank you for using faststock. Goodbye!"
	Pause   = "Press Enter to continue..."

	MainMenu      = "--- Main Menu ---"
	OptionAdd     = "1. Add Product"
	OptionRemove  = "2. Remove Product"
	OptionList    = "3. List Products"
	OptionFind    = "4. Find Product"
	OptionExit    = "5. Exit"
	ChooseOption  = "Choose an option: "
	InvalidOption = "Invalid option."

	AddHeader        = "--- Add Product ---"
	PromptType       = "Type (generic/electronic/food): "
	PromptName       = "Product name: "
	PromptPrice      = "Price: "
	PromptWarranty   = "Warranty (months): "
	PromptExpiration = "Expiration date (YYYY-MM-DD): "
	InvalidType      = "Invalid type."
	InvalidValue     = "Invalid value."
	ProductAdded     = "Product added with ID %s."

	RemoveHeader   = "--- Remove Product ---"
	PromptRemoveID = "ID of the product to remove: "
	ProductRemoved = "Product %s removed."
	InvalidID      = "Invalid ID."
	NotFound       = "Error: product %s not found in the inventory."

	ListHeader = "--- Products in Stock ---"
	ListEmpty  = "No products in the inventory."
	ListFooter = "----------------------------"

	FindHeader   = "--- Find Product ---"
	PromptFindID = "ID of the product to find: "

	GenericLine    = "%s | Price: $%s"
	ElectronicLine = "%s | Price: $%s | Warranty: %s months"
	FoodLine       = "%s | Price: $%s | Expires: %s"
)

var brazilianPortuguese = map[string]string{
	Banner:  "=== Sistema de Inventário ===",
	Welcome: "Bem-vindo ao sistema de inventário!",
	Goodbye: "Obrigado por usar o Faststock. Até logo!",
	Pause:   "Pressione Enter para continuar...",

	MainMenu:      "--- Menu Principal ---",
	OptionAdd:     "1. Adicionar Produto",
	OptionRemove:  "2. Remover Produto",
	OptionList:    "3. Listar Produtos",
	OptionFind:    "4. Buscar Produto",
	OptionExit:    "5. Sair",
	ChooseOption:  "Escolha uma opção: ",
	InvalidOption: "Opção inválida.",

	AddHeader:        "--- Adicionar Produto ---",
	PromptType:       "Tipo (generico/eletronico/comida): ",
	PromptName:       "Nome do produto: ",
	PromptPrice:      "Preço: ",
	PromptWarranty:   "Garantia (meses): ",
	PromptExpiration: "Data de validade (AAAA-MM-DD): ",
	InvalidType:      "Tipo inválido.",
	InvalidValue:     "Valor inválido.",
	ProductAdded:     "Produto adicionado com ID %s.",

	RemoveHeader:   "--- Remover Produto ---",
	PromptRemoveID: "ID do produto a remover: ",
	ProductRemoved: "Produto %s removido com sucesso.",
	InvalidID:      "ID inválido.",
	NotFound:       "Erro: Produto %s não encontrado no inventário.",

	ListHeader: "--- Produtos no Estoque ---",
	ListEmpty:  "Nenhum produto no inventário.",
	ListFooter: "----------------------------",

	FindHeader:   "--- Buscar Produto ---",
	PromptFindID: "ID do produto a buscar: ",

	GenericLine:    "%s | Preço: R$%s",
	ElectronicLine: "%s | Preço: R$%s | Garantia: %s meses",
	FoodLine:       "%s | Preço: R$%s | Validade: %s",
}
