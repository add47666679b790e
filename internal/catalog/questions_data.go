package catalog

import (
	"greenify/internal/game"
	"greenify/internal/i18n"
)

var questions = []Question{
	{
		ID: 1, Difficulty: game.Easy, CorrectOption: 2,
		Category: i18n.Text{AZ: "Təkrar Emal", EN: "Recycling", RU: "Переработка"},
		Prompt: i18n.Text{AZ: "Plastik şüşənin təbiətdə parçalanması üçün təxminən neçə il lazımdır?", EN: "How long does it take for a plastic bottle to decompose in nature?", RU: "Сколько времени требуется для разложения пластиковой бутылки в природе?"},
		Options: [game.OptionCount]i18n.Text{
			{AZ: "50 il", EN: "50 years", RU: "50 лет"},
			{AZ: "100 il", EN: "100 years", RU: "100 лет"},
			{AZ: "450 il", EN: "450 years", RU: "450 лет"},
			{AZ: "1000 il", EN: "1000 years", RU: "1000 лет"},
		},
	},
	{
		ID: 2, Difficulty: game.Easy, CorrectOption: 1,
		Category: i18n.Text{AZ: "Təkrar Emal", EN: "Recycling", RU: "Переработка"},
		Prompt: i18n.Text{AZ: "Hansı rəng təkrar emal qablarında ümumiyyətlə kağız tullantıları üçün istifadə olunur?", EN: "What color is generally used for paper waste in recycling bins?", RU: "Какой цвет обычно используется для бумажных отходов в контейнерах для переработки?"},
		Options: [game.OptionCount]i18n.Text{
			{AZ: "Yaşıl", EN: "Green", RU: "Зеленый"},
			{AZ: "Mavi", EN: "Blue", RU: "Синий"},
			{AZ: "Sarı", EN: "Yellow", RU: "Желтый"},
			{AZ: "Qırmızı", EN: "Red", RU: "Красный"},
		},
	},
	{
		ID: 3, Difficulty: game.Easy, CorrectOption: 1,
		Category: i18n.Text{AZ: "Bitkilər", EN: "Plants", RU: "Растения"},
		Prompt: i18n.Text{AZ: "Ağaclar hansı qazı udur və havaya nə buraxır?", EN: "What gas do trees absorb and what do they release into the air?", RU: "Какой газ поглощают деревья и что они выделяют в воздух?"},
		Options: [game.OptionCount]i18n.Text{
			{AZ: "Oksigen udur, karbon dioksid buraxır", EN: "Absorb oxygen, release carbon dioxide", RU: "Поглощают кислород, выделяют углекислый газ"},
			{AZ: "Karbon dioksid udur, oksigen buraxır", EN: "Absorb carbon dioxide, release oxygen", RU: "Поглощают углекислый газ, выделяют кислород"},
			{AZ: "Azot udur, oksigen buraxır", EN: "Absorb nitrogen, release oxygen", RU: "Поглощают азот, выделяют кислород"},
			{AZ: "Hər ikisini udur", EN: "Absorb both", RU: "Поглощают оба"},
		},
	},
	{
		ID: 4, Difficulty: game.Easy, CorrectOption: 1,
		Category: i18n.Text{AZ: "Enerji", EN: "Energy", RU: "Энергия"},
		Prompt: i18n.Text{AZ: "Elektrik enerjisi qənaət edən lampa hansıdır?", EN: "Which lamp saves electrical energy?", RU: "Какая лампа экономит электроэнергию?"},
		Options: [game.OptionCount]i18n.Text{
			{AZ: "Közərmə lampa", EN: "Incandescent lamp", RU: "Лампа накаливания"},
			{AZ: "LED lampa", EN: "LED lamp", RU: "LED лампа"},
			{AZ: "Neon lampa", EN: "Neon lamp", RU: "Неоновая лампа"},
			{AZ: "Halojen lampa", EN: "Halogen lamp", RU: "Галогенная лампа"},
		},
	},
	{
		ID: 5, Difficulty: game.Easy, CorrectOption: 1,
		Category: i18n.Text{AZ: "Su Qənaəti", EN: "Water Conservation", RU: "Экономия воды"},
		Prompt: i18n.Text{AZ: "Su qənaətli olan vəziyyət hansıdır?", EN: "Which situation is water-saving?", RU: "Какая ситуация является водосберегающей?"},
		Options: [game.OptionCount]i18n.Text{
			{AZ: "Duş qəbul edərkən su axıtmaq", EN: "Leaving water running while showering", RU: "Оставлять воду включенной во время душа"},
			{AZ: "Diş fırçalayarkən kranı bağlamaq", EN: "Closing the tap while brushing teeth", RU: "Закрывать кран при чистке зубов"},
			{AZ: "Avtomobil yumaq", EN: "Washing a car", RU: "Мыть машину"},
			{AZ: "Bağda hər gün su vermək", EN: "Watering the garden every day", RU: "Поливать сад каждый день"},
		},
	},
	{
		ID: 6, Difficulty: game.Medium, CorrectOption: 1,
		Category: i18n.Text{AZ: "Statistika", EN: "Statistics", RU: "Статистика"},
		Prompt: i18n.Text{AZ: "Azərbaycanda neçə faiz tullantı təkrar emal olunur?", EN: "What percentage of waste is recycled in Azerbaijan?", RU: "Какой процент отходов перерабатывается в Азербайджане?"},
		Options: [game.OptionCount]i18n.Text{
			{AZ: "5%", EN: "5%", RU: "5%"},
			{AZ: "15%", EN: "15%", RU: "15%"},
			{AZ: "30%", EN: "30%", RU: "30%"},
			{AZ: "50%", EN: "50%", RU: "50%"},
		},
	},
	{
		ID: 7, Difficulty: game.Medium, CorrectOption: 1,
		Category: i18n.Text{AZ: "Kompost", EN: "Composting", RU: "Компостирование"},
		Prompt: i18n.Text{AZ: "Kompost nədir?", EN: "What is compost?", RU: "Что такое компост?"},
		Options: [game.OptionCount]i18n.Text{
			{AZ: "Kimyəvi gübrə", EN: "Chemical fertilizer", RU: "Химическое удобрение"},
			{AZ: "Üzvi tullantılardan hazırlanan təbii gübrə", EN: "Natural fertilizer made from organic waste", RU: "Натуральное удобрение из органических отходов"},
			{AZ: "Plastik material", EN: "Plastic material", RU: "Пластиковый материал"},
			{AZ: "Metal qırıntıları", EN: "Metal scraps", RU: "Металлические обрезки"},
		},
	},
	{
		ID: 8, Difficulty: game.Medium, CorrectOption: 2,
		Category: i18n.Text{AZ: "Bitkilər", EN: "Plants", RU: "Растения"},
		Prompt: i18n.Text{AZ: "Fotosintez prosesində bitkilər hansı enerji mənbəyindən istifadə edir?", EN: "What energy source do plants use in photosynthesis?", RU: "Какой источник энергии используют растения при фотосинтезе?"},
		Options: [game.OptionCount]i18n.Text{
			{AZ: "Külək enerjisi", EN: "Wind energy", RU: "Энергия ветра"},
			{AZ: "Su enerjisi", EN: "Water energy", RU: "Энергия воды"},
			{AZ: "Günəş enerjisi", EN: "Solar energy", RU: "Солнечная энергия"},
			{AZ: "Kimyəvi enerji", EN: "Chemical energy", RU: "Химическая энергия"},
		},
	},
	{
		ID: 9, Difficulty: game.Medium, CorrectOption: 2,
		Category: i18n.Text{AZ: "Nəqliyyat", EN: "Transportation", RU: "Транспорт"},
		Prompt: i18n.Text{AZ: "Karbon izinin azaldılması üçün hansı nəqliyyat vasitəsi daha ekologikdir?", EN: "Which vehicle is more ecological to reduce carbon footprint?", RU: "Какой транспорт более экологичен для уменьшения углеродного следа?"},
		Options: [game.OptionCount]i18n.Text{
			{AZ: "Benzinli avtomobil", EN: "Gasoline car", RU: "Бензиновый автомобиль"},
			{AZ: "Dizel avtomobil", EN: "Diesel car", RU: "Дизельный автомобиль"},
			{AZ: "Elektromobil", EN: "Electric car", RU: "Электромобиль"},
			{AZ: "Motosiklet", EN: "Motorcycle", RU: "Мотоцикл"},
		},
	},
	{
		ID: 10, Difficulty: game.Medium, CorrectOption: 2,
		Category: i18n.Text{AZ: "Atmosfer", EN: "Atmosphere", RU: "Атмосфера"},
		Prompt: i18n.Text{AZ: "Ozon təbəqəsinin incəlməsinə hansı qazlar səbəb olur?", EN: "What gases cause the thinning of the ozone layer?", RU: "Какие газы вызывают истончение озонового слоя?"},
		Options: [game.OptionCount]i18n.Text{
			{AZ: "Oksigen", EN: "Oxygen", RU: "Кислород"},
			{AZ: "Azot", EN: "Nitrogen", RU: "Азот"},
			{AZ: "Xloroflorokarbonlar (CFC)", EN: "Chlorofluorocarbons (CFC)", RU: "Хлорфторуглероды (CFC)"},
			{AZ: "Hidrogen", EN: "Hydrogen", RU: "Водород"},
		},
	},
	{
		ID: 11, Difficulty: game.Hard, CorrectOption: 0,
		Category: i18n.Text{AZ: "İqtisadiyyat", EN: "Economy", RU: "Экономика"},
		Prompt: i18n.Text{AZ: "Dövri iqtisadiyyat (Circular Economy) konsepsiyasının əsas prinsipi nədir?", EN: "What is the main principle of the Circular Economy concept?", RU: "Каков основной принцип концепции циркулярной экономики?"},
		Options: [game.OptionCount]i18n.Text{
			{AZ: "Tullantıları minimuma endirmək və resursları təkrar istifadə etmək", EN: "Minimize waste and reuse resources", RU: "Минимизировать отходы и повторно использовать ресурсы"},
			{AZ: "Daha çox məhsul istehsal etmək", EN: "Produce more products", RU: "Производить больше продуктов"},
			{AZ: "İstehlakı artırmaq", EN: "Increase consumption", RU: "Увеличивать потребление"},
			{AZ: "Qiymətləri aşağı salmaq", EN: "Lower prices", RU: "Снижать цены"},
		},
	},
	{
		ID: 12, Difficulty: game.Hard, CorrectOption: 2,
		Category: i18n.Text{AZ: "Yenilenən Enerji", EN: "Renewable Energy", RU: "Возобновляемая энергия"},
		Prompt: i18n.Text{AZ: "Biokütlə enerjisi hansı mənbələrdən əldə edilir?", EN: "From what sources is biomass energy obtained?", RU: "Из каких источников получают энергию биомассы?"},
		Options: [game.OptionCount]i18n.Text{
			{AZ: "Neft və qaz", EN: "Oil and gas", RU: "Нефть и газ"},
			{AZ: "Kömür və daş kömür", EN: "Coal", RU: "Уголь"},
			{AZ: "Üzvi materiallar və bitki qalıqları", EN: "Organic materials and plant residues", RU: "Органические материалы и растительные остатки"},
			{AZ: "Nüvə parçalanması", EN: "Nuclear fission", RU: "Ядерное деление"},
		},
	},
	{
		ID: 13, Difficulty: game.Hard, CorrectOption: 1,
		Category: i18n.Text{AZ: "Su Ekologiyası", EN: "Water Ecology", RU: "Водная экология"},
		Prompt: i18n.Text{AZ: "Ötrofikasiya hansı ekoloji problemdir?", EN: "What ecological problem is eutrophication?", RU: "Какая экологическая проблема является эвтрофикацией?"},
		Options: [game.OptionCount]i18n.Text{
			{AZ: "Meşələrin qırılması", EN: "Deforestation", RU: "Вырубка лесов"},
			{AZ: "Su hövzələrində qida maddələrinin artması və alq çiçəklənməsi", EN: "Increase of nutrients in water bodies and algae blooming", RU: "Увеличение питательных веществ в водоемах и цветение водорослей"},
			{AZ: "Havanın çirklənməsi", EN: "Air pollution", RU: "Загрязнение воздуха"},
			{AZ: "Torpağın eroziyası", EN: "Soil erosion", RU: "Эрозия почвы"},
		},
	},
	{
		ID: 14, Difficulty: game.Hard, CorrectOption: 1,
		Category: i18n.Text{AZ: "İqlim Dəyişikliyi", EN: "Climate Change", RU: "Изменение климата"},
		Prompt: i18n.Text{AZ: "Karbon tutma (Carbon Sequestration) prosesi nə deməkdir?", EN: "What does the Carbon Sequestration process mean?", RU: "Что означает процесс связывания углерода (Carbon Sequestration)?"},
		Options: [game.OptionCount]i18n.Text{
			{AZ: "Karbon dioksidin atmosferə buraxılması", EN: "Release of carbon dioxide to atmosphere", RU: "Выброс углекислого газа в атмосферу"},
			{AZ: "Karbon dioksidin tutulması və saxlanılması", EN: "Capture and storage of carbon dioxide", RU: "Захват и хранение углекислого газа"},
			{AZ: "Karbon dioksidin yandırılması", EN: "Burning of carbon dioxide", RU: "Сжигание углекислого газа"},
			{AZ: "Karbon dioksidin istehsalı", EN: "Production of carbon dioxide", RU: "Производство углекислого газа"},
		},
	},
	{
		ID: 15, Difficulty: game.Hard, CorrectOption: 2,
		Category: i18n.Text{AZ: "Beynəlxalq Sazişlər", EN: "International Agreements", RU: "Международные соглашения"},
		Prompt: i18n.Text{AZ: "Bioloji müxtəlifliyin qorunmasında hansı beynəlxalq sənəd əsasdır?", EN: "Which international document is fundamental for biodiversity conservation?", RU: "Какой международный документ является основным для сохранения биоразнообразия?"},
		Options: [game.OptionCount]i18n.Text{
			{AZ: "Kioto Protokolu", EN: "Kyoto Protocol", RU: "Киотский протокол"},
			{AZ: "Paris Sazişi", EN: "Paris Agreement", RU: "Парижское соглашение"},
			{AZ: "Bioloji Müxtəliflik Konvensiyası", EN: "Convention on Biological Diversity", RU: "Конвенция о биологическом разнообразии"},
			{AZ: "Montreal Protokolu", EN: "Montreal Protocol", RU: "Монреальский протокол"},
		},
	},
}
