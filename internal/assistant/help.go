package assistant

const helpText = `🤖 Comandos Disponibles:

📋 TAREAS
• tarea agregar [descripción] - Nueva tarea
• tarea listar - Ver todas las tareas

📅 EVENTOS
• evento agregar [nombre], [fecha], [hora] - Nuevo evento
• evento listar - Ver calendario

💰 GASTOS
• gasto [monto] [categoría] - Registrar gasto
• gasto resumen - Ver análisis de gastos

🧘‍♂️ BIENESTAR
• bienestar agua [vasos] - Registrar agua
• bienestar ejercicio [descripción] - Registrar ejercicio

📊 ESTADÍSTICAS
• estadisticas gastos - Ver gráficos de gastos
• estadisticas bienestar - Ver progreso

💡 TIPS
• tips [categoría] - Obtener consejos
  Categorías: general, productividad, finanzas, ejercicio

❓ AYUDA
• ayuda - Ver este mensaje`
